package app

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestInitKafkaProducer_EmptyBrokers(t *testing.T) {
	logger := log.WithField("test", "kafka")

	producer, err := initKafkaProducer("", logger)
	if err != nil {
		t.Errorf("expected no error for empty brokers, got %v", err)
	}
	if producer != nil {
		t.Error("expected nil producer for empty brokers")
	}
}

func TestInitKafkaProducer_InvalidBrokers(t *testing.T) {
	logger := log.WithField("test", "kafka")

	producer, err := initKafkaProducer("invalid-broker:9999", logger)
	if err == nil {
		t.Error("expected error for invalid brokers")
	}
	if producer != nil {
		t.Error("expected nil producer on error")
	}
}

func TestInitKafkaProducer_BrokersWithSpaces(t *testing.T) {
	logger := log.WithField("test", "kafka")

	// Пробелы после запятых должны обрезаться.
	producer, err := initKafkaProducer("broker1:9092, broker2:9092", logger)
	if err == nil {
		t.Error("expected error for unreachable brokers")
	}
	if producer != nil {
		t.Error("expected nil producer on error")
	}
}

func TestCloseKafka_NilProducer(t *testing.T) {
	logger := log.WithField("test", "kafka")

	// Не должно паниковать.
	closeKafka(nil, logger)
}
