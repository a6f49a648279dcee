package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerRetryMax is the maximum number of publish retries.
	ProducerRetryMax = 3
	// ProducerTimeout is the publish timeout.
	ProducerTimeout = 10 * time.Second
)

// KafkaVersion is the minimum broker version the producer targets.
var KafkaVersion = sarama.V2_6_0_0
