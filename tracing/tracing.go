package tracing

import (
	"io"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/config"
)

func InitTracer(l logrus.FieldLogger) func(serviceName string) (io.Closer, error) {
	return func(serviceName string) (io.Closer, error) {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, err
		}
		cfg.ServiceName = serviceName
		cfg.Sampler = &config.SamplerConfig{Type: jaeger.SamplerTypeConst, Param: 1}

		tracer, closer, err := cfg.NewTracer(config.Logger(jaeger.StdLogger))
		if err != nil {
			return nil, err
		}
		opentracing.SetGlobalTracer(tracer)
		return closer, nil
	}
}

func Teardown(l logrus.FieldLogger) func(closer io.Closer) func() {
	return func(closer io.Closer) func() {
		return func() {
			err := closer.Close()
			if err != nil {
				l.WithError(err).Errorf("Closing tracer.")
			}
		}
	}
}
