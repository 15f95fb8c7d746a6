package producer

import (
	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Provider resolves a topic token from the environment and hands back a
// MessageProducer bound to that topic. Tests substitute a capturing provider.
type Provider func(token string) producer.MessageProducer

func ProviderImpl(l logrus.FieldLogger) func(span opentracing.Span) Provider {
	return func(span opentracing.Span) Provider {
		return func(token string) producer.MessageProducer {
			t, err := topic.EnvProvider(l)(token)()
			if err != nil {
				l.WithError(err).Fatalf("Unable to locate topic for token [%s].", token)
			}
			return producer.Produce(l)(producer.WriterProvider(func() (string, error) { return t, nil }))()
		}
	}
}
