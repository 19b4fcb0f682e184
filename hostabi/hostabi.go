package hostabi

// BufferResource is a host-side byte buffer with an implicit read cursor.
// The resource is single-owner and single-consumer: it is scoped to one
// invocation and must not have two outstanding reads.
type BufferResource interface {
	// Remaining reports how many bytes the host believes are left. It is
	// a sizing hint, not a contract: the host may deliver fewer or more
	// bytes before signaling exhaustion.
	Remaining() uint64

	// Read returns the next chunk of at most maxBytes bytes. ok is false
	// once the buffer is exhausted; the chunk may be shorter than
	// requested at any point.
	Read(maxBytes uint64) (chunk []byte, ok bool)
}

// Payload is the wire shape of a byte payload: exactly one of Inline or
// Buffer is meaningful. A nil Buffer means the payload is inline (possibly
// empty).
type Payload struct {
	Inline []byte
	Buffer BufferResource
}

// InlinePayload wraps already-owned bytes.
func InlinePayload(b []byte) Payload {
	return Payload{Inline: b}
}

// BufferPayload wraps a host-resident buffer handle.
func BufferPayload(r BufferResource) Payload {
	return Payload{Buffer: r}
}

// IsBuffer reports whether the payload is still resident on the host.
func (p Payload) IsBuffer() bool {
	return p.Buffer != nil
}

// Header is a name/value pair used by HTTP and web-function interfaces.
type Header struct {
	Name  string
	Value string
}

// Redis capability: batched commands against a redis/valkey instance the
// host holds a pooled connection to.

// RedisCommand is one command in a pipeline: a name plus ordered binary
// arguments.
type RedisCommand struct {
	Name string
	Args [][]byte
}

// RedisReplyKind tags the shape of one host reply.
type RedisReplyKind uint8

const (
	RedisNil RedisReplyKind = iota
	RedisInt
	RedisData
	RedisBulk
	RedisStatus
	RedisOkay
)

// RedisReply is one reply as delivered by the host. Only the field matching
// Kind is meaningful. Bulk replies carry a further lazily-pulled source; the
// host does not deliver nested elements until they are pulled.
type RedisReply struct {
	Bulk   RedisReplySource
	Data   []byte
	Status string
	Int    int64
	Kind   RedisReplyKind
}

// RedisReplySource is the host's pull cursor over a reply sequence. Replies
// arrive in strict submission order, one per pull. ok is false once the
// sequence is exhausted; the host keeps reporting false thereafter.
type RedisReplySource interface {
	Pull() (RedisReply, bool)
}

// RedisConn is a connection checked out from the host's connection cache.
type RedisConn interface {
	Pipe(commands []RedisCommand) (RedisReplySource, error)
}

// Redis opens connections by connection string. Connections are kept alive
// by the host across invocations for reuse.
type Redis interface {
	Connect(connectionString string) RedisConn
}

// Cache capabilities: the cache this function runs within.

// CacheScalar is scalar get/set on the surrounding cache.
type CacheScalar interface {
	// Get returns the stored payload. found is false on a miss.
	Get(key []byte) (value Payload, found bool, err error)

	// Set stores value under key with a time-to-live in milliseconds.
	Set(key []byte, value Payload, ttlMillis uint64) error
}

// PopResult is the result of a list pop: the popped value and the list
// length after the pop.
type PopResult struct {
	Value      Payload
	ListLength uint32
}

// CacheList is list manipulation on the surrounding cache.
type CacheList interface {
	PushFront(list []byte, value Payload, ttlMillis uint64, refreshTTL bool, truncateBackTo uint32) (uint32, error)
	PushBack(list []byte, value Payload, ttlMillis uint64, refreshTTL bool, truncateBackTo uint32) (uint32, error)

	// PopFront and PopBack return nil when the list does not exist.
	PopFront(list []byte) (*PopResult, error)
	PopBack(list []byte) (*PopResult, error)
}

// Topics publishes messages to topics in the surrounding cache.
type Topics interface {
	Publish(topic string, value string) error
}

// HTTP capability: outbound calls through the host's connection pool.

// HTTPRequest is an outbound request. The body may be a host-resident
// payload, letting a function proxy bytes without copying them into guest
// memory.
type HTTPRequest struct {
	URL     string
	Headers []Header
	Body    Payload
}

// HTTPResponse is the host's response. The body stays host-resident until
// the guest materializes it.
type HTTPResponse struct {
	Headers []Header
	Body    Payload
	Status  uint16
}

// HTTP issues outbound requests.
type HTTP interface {
	Get(req HTTPRequest) (HTTPResponse, error)
	Put(req HTTPRequest) (HTTPResponse, error)
	Post(req HTTPRequest) (HTTPResponse, error)
	Delete(req HTTPRequest) (HTTPResponse, error)
}

// Logging capability.

// LogLevel filters the host's own system logs into a destination.
type LogLevel uint8

const (
	LogOff LogLevel = iota
	LogError
	LogWarn
	LogInfo
	LogDebug
)

// TopicLogDestination routes logs to a topic in the surrounding cache.
type TopicLogDestination struct {
	TopicName string
}

// CloudwatchLogDestination routes logs to a CloudWatch log group via an
// assumed IAM role.
type CloudwatchLogDestination struct {
	IAMRoleARN   string
	LogGroupName string
}

// LogDestinationSpec selects exactly one destination.
type LogDestinationSpec struct {
	Topic      *TopicLogDestination
	Cloudwatch *CloudwatchLogDestination
}

// LogConfigurationInput is one destination plus the system-log level to
// filter into it.
type LogConfigurationInput struct {
	Destination     LogDestinationSpec
	SystemLogsLevel LogLevel
}

// Logging writes log lines and configures destinations.
type Logging interface {
	Log(message string)
	ConfigureLogging(configurations []LogConfigurationInput) error
}

// Spawn starts a fire-and-forget invocation of another function.
type Spawn interface {
	SpawnFunction(name string, payload []byte) error
}

// WebSupport exposes request context for web functions. Both operations
// consume their value on the host side: repeated calls yield nothing.
type WebSupport interface {
	Headers() []Header
	TokenMetadata() (string, bool)
}

// Token capability.

// TokenExpiry bounds a disposable token's lifetime.
type TokenExpiry struct {
	ValidForSeconds uint32
}

// DisposableToken is a scoped, short-lived API token.
type DisposableToken struct {
	APIKey     string
	Endpoint   string
	ValidUntil uint64
}

// Tokens mints disposable tokens. Permissions travel as the host's JSON
// permission message, produced by the token package's builders.
type Tokens interface {
	GenerateDisposableToken(expiry TokenExpiry, permissionsJSON []byte, tokenID string) (DisposableToken, error)
}

// AWS capabilities: calls ride the host's always-hot AWS channel.

// AWSCredentials are hardcoded IAM user credentials.
type AWSCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// AWSCredentialsProvider is an opaque host handle for a configured
// region + credentials pair.
type AWSCredentialsProvider interface {
	Region() string
}

// AWSAuth builds credential providers.
type AWSAuth interface {
	Provider(credentials AWSCredentials, region string) (AWSCredentialsProvider, error)
}

// S3GetRequest and S3PutRequest address one object.
type S3GetRequest struct {
	Bucket string
	Key    string
}

type S3PutRequest struct {
	Bucket string
	Key    string
	Body   []byte
}

// S3 reads and writes objects. Get bodies may stay host-resident.
type S3 interface {
	Put(provider AWSCredentialsProvider, req S3PutRequest) error
	Get(provider AWSCredentialsProvider, req S3GetRequest) (body Payload, found bool, err error)
}

// DDBGetItemRequest fetches one item by its JSON-encoded key attributes.
// Items travel as DynamoDB's JSON wire shape, e.g.
//
//	{"name": {"S": "arthur"}, "age": {"N": "23"}}
type DDBGetItemRequest struct {
	TableName      string
	KeyJSON        []byte
	ConsistentRead bool
}

// DDBPutItemRequest stores one JSON-encoded item.
type DDBPutItemRequest struct {
	TableName string
	ItemJSON  []byte
}

// DDB is the DynamoDB data-plane.
type DDB interface {
	GetItem(provider AWSCredentialsProvider, req DDBGetItemRequest) (itemJSON []byte, found bool, err error)
	PutItem(provider AWSCredentialsProvider, req DDBPutItemRequest) error
}

// LambdaInvokeRequest invokes a function synchronously.
type LambdaInvokeRequest struct {
	FunctionName string
	Qualifier    string
	Payload      []byte
}

// LambdaInvokeResponse carries the function's status code and payload.
// Payload is nil when the function returned none.
type LambdaInvokeResponse struct {
	Payload    []byte
	HasPayload bool
	StatusCode int32
}

// Lambda invokes AWS Lambda functions.
type Lambda interface {
	Invoke(provider AWSCredentialsProvider, req LambdaInvokeRequest) (LambdaInvokeResponse, error)
}

// SecretValueRequest addresses one secret version.
type SecretValueRequest struct {
	SecretID     string
	VersionID    string
	VersionStage string
}

// SecretsManager reads secret values.
type SecretsManager interface {
	GetSecretValue(provider AWSCredentialsProvider, req SecretValueRequest) (Payload, error)
}
