package renderer

import (
	"fmt"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/golang/glog"
)

// GlogLogger implements core.Logger on top of glog's INFO stream
type GlogLogger struct{}

func (gl *GlogLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

// NewGlogLogger creates a logger that writes through glog
func NewGlogLogger() core.Logger {
	return &GlogLogger{}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
