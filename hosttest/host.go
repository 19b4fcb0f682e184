package hosttest

import (
	"github.com/momentohq/functions/hostabi"
)

// Host bundles one in-memory instance of every capability and binds them
// all. Individual capabilities can also be constructed and bound alone.
type Host struct {
	Cache   *Cache
	Topics  *Topics
	Redis   *Redis
	HTTP    *HTTP
	Logging *Logging
	Spawn   *Spawn
	Web     *Web
	Tokens  *Tokens
	AWS     *AWS
}

// New builds a fully populated in-memory host.
func New() *Host {
	return &Host{
		Cache:   NewCache(),
		Topics:  &Topics{},
		Redis:   &Redis{},
		HTTP:    &HTTP{},
		Logging: &Logging{},
		Spawn:   &Spawn{},
		Web:     &Web{},
		Tokens:  &Tokens{},
		AWS:     NewAWS(),
	}
}

// Bind installs every capability into the process-wide binding.
func (h *Host) Bind() {
	hostabi.Bind(hostabi.Host{
		Cache:          h.Cache,
		CacheList:      h.Cache,
		Topics:         h.Topics,
		Redis:          h.Redis,
		HTTP:           h.HTTP,
		Logging:        h.Logging,
		Spawn:          h.Spawn,
		Web:            h.Web,
		Tokens:         h.Tokens,
		AWSAuth:        h.AWS,
		S3:             h.AWS,
		DDB:            h.AWS,
		Lambda:         h.AWS,
		SecretsManager: h.AWS,
	})
}

// SetEntry is one recorded scalar write.
type SetEntry struct {
	Value     []byte
	TTLMillis uint64
}

// Cache implements both the scalar and list capabilities over maps.
type Cache struct {
	Scalars map[string]SetEntry
	Lists   map[string][][]byte

	// LastPush records the options of the most recent list push.
	LastPush struct {
		TTLMillis      uint64
		RefreshTTL     bool
		TruncateBackTo uint32
	}
}

func NewCache() *Cache {
	return &Cache{
		Scalars: map[string]SetEntry{},
		Lists:   map[string][][]byte{},
	}
}

func (c *Cache) Get(key []byte) (hostabi.Payload, bool, error) {
	entry, found := c.Scalars[string(key)]
	if !found {
		return hostabi.Payload{}, false, nil
	}
	return hostabi.InlinePayload(entry.Value), true, nil
}

func (c *Cache) Set(key []byte, value hostabi.Payload, ttlMillis uint64) error {
	c.Scalars[string(key)] = SetEntry{Value: materialize(value), TTLMillis: ttlMillis}
	return nil
}

func (c *Cache) PushFront(list []byte, value hostabi.Payload, ttlMillis uint64, refreshTTL bool, truncateBackTo uint32) (uint32, error) {
	name := string(list)
	c.Lists[name] = append([][]byte{materialize(value)}, c.Lists[name]...)
	c.recordPush(name, ttlMillis, refreshTTL, truncateBackTo)
	return uint32(len(c.Lists[name])), nil
}

func (c *Cache) PushBack(list []byte, value hostabi.Payload, ttlMillis uint64, refreshTTL bool, truncateBackTo uint32) (uint32, error) {
	name := string(list)
	c.Lists[name] = append(c.Lists[name], materialize(value))
	c.recordPush(name, ttlMillis, refreshTTL, truncateBackTo)
	return uint32(len(c.Lists[name])), nil
}

func (c *Cache) recordPush(name string, ttlMillis uint64, refreshTTL bool, truncateBackTo uint32) {
	c.LastPush.TTLMillis = ttlMillis
	c.LastPush.RefreshTTL = refreshTTL
	c.LastPush.TruncateBackTo = truncateBackTo
	if truncateBackTo > 0 && uint32(len(c.Lists[name])) > truncateBackTo {
		c.Lists[name] = c.Lists[name][:truncateBackTo]
	}
}

func (c *Cache) PopFront(list []byte) (*hostabi.PopResult, error) {
	name := string(list)
	elements := c.Lists[name]
	if len(elements) == 0 {
		return nil, nil
	}
	value := elements[0]
	c.Lists[name] = elements[1:]
	return &hostabi.PopResult{Value: hostabi.InlinePayload(value), ListLength: uint32(len(elements) - 1)}, nil
}

func (c *Cache) PopBack(list []byte) (*hostabi.PopResult, error) {
	name := string(list)
	elements := c.Lists[name]
	if len(elements) == 0 {
		return nil, nil
	}
	value := elements[len(elements)-1]
	c.Lists[name] = elements[:len(elements)-1]
	return &hostabi.PopResult{Value: hostabi.InlinePayload(value), ListLength: uint32(len(elements) - 1)}, nil
}

// Publication is one recorded topic publish.
type Publication struct {
	Topic string
	Value string
}

// Topics records publishes.
type Topics struct {
	Published []Publication
	Err       error
}

func (t *Topics) Publish(topic, value string) error {
	if t.Err != nil {
		return t.Err
	}
	t.Published = append(t.Published, Publication{Topic: topic, Value: value})
	return nil
}

// Logging records log lines and destination configurations.
type Logging struct {
	Lines   []string
	Configs [][]hostabi.LogConfigurationInput
	Err     error
}

func (l *Logging) Log(message string) {
	l.Lines = append(l.Lines, message)
}

func (l *Logging) ConfigureLogging(configurations []hostabi.LogConfigurationInput) error {
	if l.Err != nil {
		return l.Err
	}
	l.Configs = append(l.Configs, configurations)
	return nil
}

// SpawnedFunction is one recorded spawn.
type SpawnedFunction struct {
	Name    string
	Payload []byte
}

// Spawn records fire-and-forget invocations.
type Spawn struct {
	Spawned []SpawnedFunction
	Err     error
}

func (s *Spawn) SpawnFunction(name string, payload []byte) error {
	if s.Err != nil {
		return s.Err
	}
	s.Spawned = append(s.Spawned, SpawnedFunction{Name: name, Payload: payload})
	return nil
}

// Web serves request context. Headers and token metadata are consumed on
// first use, matching the host.
type Web struct {
	RequestHeaders []hostabi.Header
	Metadata       string
	HasMetadata    bool

	headersTaken  bool
	metadataTaken bool
}

func (w *Web) Headers() []hostabi.Header {
	if w.headersTaken {
		return nil
	}
	w.headersTaken = true
	return w.RequestHeaders
}

func (w *Web) TokenMetadata() (string, bool) {
	if w.metadataTaken || !w.HasMetadata {
		return "", false
	}
	w.metadataTaken = true
	return w.Metadata, true
}

// TokenRequest is one recorded token mint.
type TokenRequest struct {
	Expiry          hostabi.TokenExpiry
	PermissionsJSON []byte
	TokenID         string
}

// Tokens mints canned disposable tokens and records requests.
type Tokens struct {
	Requests []TokenRequest
	Token    hostabi.DisposableToken
	Err      error
}

func (t *Tokens) GenerateDisposableToken(expiry hostabi.TokenExpiry, permissionsJSON []byte, tokenID string) (hostabi.DisposableToken, error) {
	if t.Err != nil {
		return hostabi.DisposableToken{}, t.Err
	}
	t.Requests = append(t.Requests, TokenRequest{Expiry: expiry, PermissionsJSON: permissionsJSON, TokenID: tokenID})
	return t.Token, nil
}

// materialize drains a payload into owned bytes, as the real host does on
// its side of the boundary.
func materialize(p hostabi.Payload) []byte {
	if !p.IsBuffer() {
		return p.Inline
	}
	var out []byte
	for {
		chunk, ok := p.Buffer.Read(64 * 1024)
		if !ok {
			return out
		}
		out = append(out, chunk...)
	}
}
