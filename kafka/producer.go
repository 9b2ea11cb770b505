// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package kafka

import (
	"context"
	"encoding/json"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/slowfill-relayer/chains/svm/events"
)

// Producer appends slow fill records to a kafka topic for off-chain
// indexers.
type Producer struct {
	producer *kafka.Producer
	topic    string
}

func NewProducer(broker string, topic string) (*Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": broker})
	if err != nil {
		return nil, err
	}
	return &Producer{producer: p, topic: topic}, nil
}

// Emit publishes a record keyed by its kind.
func (p *Producer) Emit(ctx context.Context, record events.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(record.Kind()),
		Value:          data,
	}, nil)
	if err != nil {
		return err
	}

	log.Debug().Str("kind", record.Kind()).Msgf("Published %s record to topic %s", record.Kind(), p.topic)
	return nil
}

func (p *Producer) Close() {
	p.producer.Flush(1000)
	p.producer.Close()
}
