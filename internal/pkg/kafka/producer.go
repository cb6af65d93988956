package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/tunderatti-ops/FarmDirect/internal/entities"
	"github.com/tunderatti-ops/FarmDirect/pkg/logger"
)

// statusChangedMessage - схема сообщения топика order.status.changed.
type statusChangedMessage struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
	Height  int64  `json:"height"`
	Updater string `json:"updater"`
}

// Producer публикует события переходов статуса заказа. Публикация
// fire-and-forget: ошибки доставки логируются, но не роняют операцию,
// которая уже закоммичена в базе.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(log logger.Logger, brokers []string, topic string, versionStr string) (*Producer, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	producerLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", topic),
	)

	return &Producer{
		log:      producerLog,
		producer: producer,
		topic:    topic,
	}, nil
}

func (p *Producer) PublishOrderStatusChanged(ctx context.Context, event entities.OrderStatusChanged) {
	msg := statusChangedMessage{
		OrderID: event.OrderID,
		Status:  event.Status.String(),
		Height:  event.Height,
		Updater: event.Updater.String(),
	}

	value, err := json.Marshal(msg)
	if err != nil {
		p.log.With(
			logger.NewField("error", err),
			logger.NewField("order", event.OrderID),
		).Error("failed to marshal order.status.changed event")
		return
	}

	// ключ - id заказа, переходы одного заказа попадают в одну партицию
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.log.With(
			logger.NewField("error", err),
			logger.NewField("order", event.OrderID),
			logger.NewField("status", event.Status.String()),
		).Error("failed to publish order.status.changed event")
		return
	}

	p.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("order.status.changed published")
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
