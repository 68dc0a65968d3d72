package geometry

import (
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/arloliu/flatgeom/internal/options"
)

// defaultCoordCapacity is the initial capacity of the builder's coordinate buffer.
const defaultCoordCapacity = 64

type builderConfig struct {
	logger        logr.Logger
	coordCapacity int
}

func newBuilderConfig() *builderConfig {
	return &builderConfig{
		logger:        logr.Discard(),
		coordCapacity: defaultCoordCapacity,
	}
}

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*builderConfig]

// WithBuilderLogger sets the logger receiving builder diagnostics.
// V(1) reports completed geometries, V(2) every container boundary.
func WithBuilderLogger(logger logr.Logger) BuilderOption {
	return options.NoError(func(c *builderConfig) {
		c.logger = logger
	})
}

// WithCapacity sets the initial capacity of the coordinate buffer, in coordinates.
func WithCapacity(n int) BuilderOption {
	return options.New(func(c *builderConfig) error {
		if n < 0 {
			return errors.Errorf("invalid builder capacity: %d", n)
		}
		c.coordCapacity = n

		return nil
	})
}
