package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"cv-insight-go/internal/config"
	"cv-insight-go/internal/logger"
)

// RabbitMQ 简历事件发布端。
// 出站消息由outbox relay投递, 这里只负责连接、拓扑声明和发布。
type RabbitMQ struct {
	conn        *amqp.Connection
	channelPool sync.Pool
	cfg         *config.RabbitMQConfig

	// declareMutex 保护已声明拓扑的本地缓存
	declareMutex sync.Mutex
	declared     map[string]bool

	publishMutex sync.Mutex
}

// NewRabbitMQ 创建RabbitMQ客户端并验证通道可用
func NewRabbitMQ(cfg *config.RabbitMQConfig) (*RabbitMQ, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, fmt.Errorf("RabbitMQ URL配置不能为空")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败 (%s): %w", cfg.URL, err)
	}

	mq := &RabbitMQ{
		conn:     conn,
		cfg:      cfg,
		declared: make(map[string]bool),
	}
	mq.channelPool = sync.Pool{
		New: func() interface{} {
			ch, chErr := conn.Channel()
			if chErr != nil {
				logger.Warn().Err(chErr).Msg("创建RabbitMQ通道失败")
				return nil
			}
			return ch
		},
	}

	// 连接检查: 至少能开一个通道
	ch := mq.getChannel()
	if ch == nil {
		conn.Close()
		return nil, fmt.Errorf("无法创建RabbitMQ通道")
	}
	mq.putChannel(ch)

	logger.Info().Str("url", cfg.URL).Msg("RabbitMQ连接成功")
	return mq, nil
}

func (r *RabbitMQ) getChannel() *amqp.Channel {
	if ch, ok := r.channelPool.Get().(*amqp.Channel); ok && ch != nil && !ch.IsClosed() {
		return ch
	}
	ch, err := r.conn.Channel()
	if err != nil {
		logger.Warn().Err(err).Msg("创建新RabbitMQ通道失败")
		return nil
	}
	return ch
}

func (r *RabbitMQ) putChannel(ch *amqp.Channel) {
	if ch != nil && !ch.IsClosed() {
		r.channelPool.Put(ch)
	}
}

// Close 关闭连接, 池中的通道随连接一起关闭
func (r *RabbitMQ) Close() error {
	return r.conn.Close()
}

// EnsureExchange 声明exchange, 同名重复调用走本地缓存
func (r *RabbitMQ) EnsureExchange(exchangeName, exchangeType string, durable bool) error {
	if exchangeName == "" {
		return fmt.Errorf("exchange名称不能为空")
	}

	r.declareMutex.Lock()
	defer r.declareMutex.Unlock()
	cacheKey := "exchange:" + exchangeName
	if r.declared[cacheKey] {
		return nil
	}

	ch := r.getChannel()
	if ch == nil {
		return fmt.Errorf("无法获取RabbitMQ通道")
	}
	defer r.putChannel(ch)

	if err := ch.ExchangeDeclare(exchangeName, exchangeType, durable, false, false, false, nil); err != nil {
		return fmt.Errorf("声明exchange '%s' 失败: %w", exchangeName, err)
	}

	r.declared[cacheKey] = true
	logger.Info().Str("exchange", exchangeName).Str("type", exchangeType).Msg("exchange已声明")
	return nil
}

// EnsureQueue 声明队列, 同名重复调用走本地缓存
func (r *RabbitMQ) EnsureQueue(queueName string, durable bool) error {
	if queueName == "" {
		return fmt.Errorf("队列名称不能为空")
	}

	r.declareMutex.Lock()
	defer r.declareMutex.Unlock()
	cacheKey := "queue:" + queueName
	if r.declared[cacheKey] {
		return nil
	}

	ch := r.getChannel()
	if ch == nil {
		return fmt.Errorf("无法获取RabbitMQ通道")
	}
	defer r.putChannel(ch)

	if _, err := ch.QueueDeclare(queueName, durable, false, false, false, nil); err != nil {
		return fmt.Errorf("声明队列 '%s' 失败: %w", queueName, err)
	}

	r.declared[cacheKey] = true
	logger.Info().Str("queue", queueName).Msg("队列已声明")
	return nil
}

// BindQueue 把队列绑定到exchange
func (r *RabbitMQ) BindQueue(queueName, exchangeName, routingKey string) error {
	r.declareMutex.Lock()
	defer r.declareMutex.Unlock()
	cacheKey := fmt.Sprintf("binding:%s:%s:%s", exchangeName, queueName, routingKey)
	if r.declared[cacheKey] {
		return nil
	}

	ch := r.getChannel()
	if ch == nil {
		return fmt.Errorf("无法获取RabbitMQ通道")
	}
	defer r.putChannel(ch)

	if err := ch.QueueBind(queueName, routingKey, exchangeName, false, nil); err != nil {
		return fmt.Errorf("绑定队列 '%s' 到exchange '%s' 失败: %w", queueName, exchangeName, err)
	}

	r.declared[cacheKey] = true
	logger.Info().
		Str("queue", queueName).
		Str("exchange", exchangeName).
		Str("routing_key", routingKey).
		Msg("队列绑定完成")
	return nil
}

// SetupResumeEventsTopology 声明简历事件所需的exchange、队列和绑定
func (r *RabbitMQ) SetupResumeEventsTopology() error {
	exchange := r.cfg.ResumeEventsExchange
	queue := r.cfg.AnalyzedQueue
	routingKey := r.cfg.AnalyzedRoutingKey

	if exchange == "" || queue == "" || routingKey == "" {
		return fmt.Errorf("简历事件拓扑配置不完整: exchange=%q, queue=%q, routing_key=%q", exchange, queue, routingKey)
	}

	if err := r.EnsureExchange(exchange, "topic", true); err != nil {
		return err
	}
	if err := r.EnsureQueue(queue, true); err != nil {
		return err
	}
	return r.BindQueue(queue, exchange, routingKey)
}

// PublishMessage 发布一条消息, persistent 控制broker端持久化
func (r *RabbitMQ) PublishMessage(ctx context.Context, exchangeName, routingKey string, message []byte, persistent bool) error {
	r.publishMutex.Lock()
	defer r.publishMutex.Unlock()

	ch := r.getChannel()
	if ch == nil {
		return fmt.Errorf("无法获取RabbitMQ通道")
	}
	defer r.putChannel(ch)

	deliveryMode := amqp.Transient
	if persistent {
		deliveryMode = amqp.Persistent
	}

	return ch.PublishWithContext(
		ctx,
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: deliveryMode,
			ContentType:  "application/json",
			Body:         message,
			Timestamp:    time.Now(),
		},
	)
}
