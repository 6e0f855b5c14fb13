package announce

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	coreannounce "github.com/taldata/izun-sub001/core/announce"
	"github.com/taldata/izun-sub001/infra/logger"
)

// Config defines the connection parameters for the Paho MQTT publisher.
type Config struct {
	// Enabled toggles the MQTT publisher. When false no broker connection is
	// made and all notices are dropped.
	Enabled bool `json:"enabled"`
	// Broker is the MQTT broker URL, e.g. tcp://localhost:1883.
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	// TopicPrefix is prepended to every notice topic.
	TopicPrefix string          `json:"topic_prefix"`
	UseTLS      bool            `json:"use_tls"`
	ClientCert  string          `json:"client_cert"`
	ClientKey   string          `json:"client_key"`
	CABundle    string          `json:"ca_bundle"`
	QoS         map[string]byte `json:"qos"`
	Retain      bool            `json:"retain"`
	LWTTopic    string          `json:"lwt_topic"`
	LWTPayload  string          `json:"lwt_payload"`
	LWTQoS      byte            `json:"lwt_qos"`
	LWTRetain   bool            `json:"lwt_retain"`
	MaxRetries  int             `json:"max_retries"`
	BackoffMS   int             `json:"backoff_ms"`
	TLSConfig   *tls.Config     `json:"-"`
}

// SetDefaults fills in default values for unset fields.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "izun-scheduler"
	}
	if c.TopicPrefix == "" {
		c.TopicPrefix = "izun"
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.BackoffMS <= 0 {
		c.BackoffMS = 100
	}
}

// Validate checks that an enabled publisher has a broker to talk to.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("announce: broker is required when enabled")
	}
	if c.UseTLS && c.TLSConfig == nil {
		if c.ClientCert == "" || c.ClientKey == "" || c.CABundle == "" {
			return fmt.Errorf("announce: tls requires client_cert, client_key and ca_bundle")
		}
	}
	return nil
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// PahoPublisher implements the announce.Publisher interface using Eclipse Paho.
type PahoPublisher struct {
	cli        pahoClient
	prefix     string
	qos        map[string]byte
	retain     bool
	maxRetries int
	backoff    time.Duration
	log        logger.Logger
}

// New builds a Publisher from the config. A disabled config yields a
// NopPublisher without touching the network.
func New(cfg Config) (coreannounce.Publisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Enabled {
		return coreannounce.NopPublisher{}, nil
	}
	return NewPahoPublisher(cfg)
}

// NewPahoPublisher connects to the MQTT broker.
func NewPahoPublisher(cfg Config) (*PahoPublisher, error) {
	cfg.SetDefaults()
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}

	log := logger.New("announce")
	opts.OnConnect = func(_ paho.Client) {
		log.Infof("MQTT connected")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoPublisher{
		cli:        c,
		prefix:     cfg.TopicPrefix,
		qos:        cfg.QoS,
		retain:     cfg.Retain,
		maxRetries: cfg.MaxRetries,
		backoff:    time.Duration(cfg.BackoffMS) * time.Millisecond,
		log:        log,
	}, nil
}

// NewClientOptions builds mqtt client options from Config.
func NewClientOptions(cfg Config) (*paho.ClientOptions, error) {
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	if cfg.UseTLS {
		tlsCfg, err := cfg.LoadTLSConfig()
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}
	if cfg.LWTTopic != "" {
		opts.SetWill(cfg.LWTTopic, cfg.LWTPayload, cfg.LWTQoS, cfg.LWTRetain)
	}
	return opts, nil
}

// LoadTLSConfig loads the TLS configuration from the file paths in the config.
func (c Config) LoadTLSConfig() (*tls.Config, error) {
	if c.TLSConfig != nil {
		return c.TLSConfig, nil
	}
	if c.ClientCert == "" || c.ClientKey == "" || c.CABundle == "" {
		return nil, fmt.Errorf("tls config requires client_cert, client_key and ca_bundle")
	}
	cert, err := tls.LoadX509KeyPair(c.ClientCert, c.ClientKey)
	if err != nil {
		return nil, fmt.Errorf("load cert: %w", err)
	}
	caBytes, err := os.ReadFile(c.CABundle)
	if err != nil {
		return nil, fmt.Errorf("read ca: %w", err)
	}
	pool := x509.NewCertPool()
	pool.AppendCertsFromPEM(caBytes)
	cfg := &tls.Config{Certificates: []tls.Certificate{cert}, RootCAs: pool, MinVersion: tls.VersionTLS12}
	return cfg, nil
}

// PublishRecommendation sends the notice to <prefix>/recommendations/<division>.
func (p *PahoPublisher) PublishRecommendation(n coreannounce.RecommendationNotice) error {
	if n.NoticeID == "" {
		n.NoticeID = uuid.NewString()
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	topic := fmt.Sprintf("%s/recommendations/%s", p.prefix, n.DivisionID)
	return p.publish("recommendation", topic, payload)
}

// PublishDeadlines sends the notice to <prefix>/deadlines/<route>.
func (p *PahoPublisher) PublishDeadlines(n coreannounce.DeadlineNotice) error {
	if n.NoticeID == "" {
		n.NoticeID = uuid.NewString()
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	topic := fmt.Sprintf("%s/deadlines/%s", p.prefix, n.RouteID)
	return p.publish("deadline", topic, payload)
}

func (p *PahoPublisher) publish(kind, topic string, payload []byte) error {
	qos := byte(0)
	if q, ok := p.qos[kind]; ok {
		qos = q
	}
	var publishErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		token := p.cli.Publish(topic, qos, p.retain, payload)
		token.Wait()
		publishErr = token.Error()
		if publishErr == nil {
			p.log.Debugf("published %s notice to %s", kind, topic)
			return nil
		}
		p.log.Errorf("publish attempt %d failed: %v", attempt+1, publishErr)
		time.Sleep(p.backoff * time.Duration(1<<attempt))
	}
	return publishErr
}

// Disconnect gracefully closes the MQTT connection.
func (p *PahoPublisher) Disconnect() {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
}
