package notify

import (
	"context"
	"strings"
	"testing"

	"venuegate/internal/shared/apperrors"
	"venuegate/pkg/logger"

	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPaymentLink_NoProducerSynthesizesDispatch(t *testing.T) {
	svc := NewService(nil, "payment-links", false, logger.GetDefault())

	result, err := svc.SendPaymentLink(context.Background(), SendLinkRequest{
		Method: MethodSMS,
		To:     "+15555550123",
		Link:   "https://checkout.roller.app/s/R1a2b3c",
	})
	require.NoError(t, err)

	assert.True(t, result.Sent)
	assert.Equal(t, MethodSMS, result.Method)
	assert.Equal(t, "+15555550123", result.To)
	assert.True(t, strings.HasPrefix(result.MessageID, "msg_"))
	assert.Len(t, result.MessageID, len("msg_")+6)
}

func TestSendPaymentLink_UnknownMethodIsUnsupported(t *testing.T) {
	svc := NewService(nil, "payment-links", false, logger.GetDefault())

	_, err := svc.SendPaymentLink(context.Background(), SendLinkRequest{
		Method: "fax",
		To:     "+15555550123",
		Link:   "https://checkout.roller.app/s/R1a2b3c",
	})

	assert.ErrorIs(t, err, apperrors.ErrUnsupported)
}

func TestSendPaymentLink_PublishesToTopic(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndSucceed()

	svc := NewService(producer, "payment-links", false, logger.GetDefault())

	result, err := svc.SendPaymentLink(context.Background(), SendLinkRequest{
		Method: MethodEmail,
		To:     "jamie@example.com",
		Link:   "https://checkout.roller.app/s/R1a2b3c",
		HoldID: "R1a2b3c",
	})
	require.NoError(t, err)
	assert.True(t, result.Sent)

	require.NoError(t, producer.Close())
}

func TestSendPaymentLink_BrokerFailureStillReportsDispatch(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(assert.AnError)

	svc := NewService(producer, "payment-links", false, logger.GetDefault())

	result, err := svc.SendPaymentLink(context.Background(), SendLinkRequest{
		Method: MethodSMS,
		To:     "+15555550123",
		Link:   "https://checkout.roller.app/s/R1a2b3c",
	})
	require.NoError(t, err)
	assert.True(t, result.Sent)

	require.NoError(t, producer.Close())
}

func TestSendPaymentLink_MockModeSkipsProducer(t *testing.T) {
	// no expectations registered: any publish would fail the test on Close
	producer := mocks.NewSyncProducer(t, nil)

	svc := NewService(producer, "payment-links", true, logger.GetDefault())

	result, err := svc.SendPaymentLink(context.Background(), SendLinkRequest{
		Method: MethodSMS,
		To:     "+15555550123",
		Link:   "https://checkout.roller.app/s/R1a2b3c",
	})
	require.NoError(t, err)
	assert.True(t, result.Sent)

	require.NoError(t, producer.Close())
}
