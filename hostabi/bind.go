package hostabi

import "fmt"

// Host aggregates the capabilities a binding makes available. Capabilities
// the deployment does not provide stay nil; using one panics at the call
// site with the capability name.
type Host struct {
	Cache          CacheScalar
	CacheList      CacheList
	Topics         Topics
	Redis          Redis
	HTTP           HTTP
	Logging        Logging
	Spawn          Spawn
	Web            WebSupport
	Tokens         Tokens
	AWSAuth        AWSAuth
	S3             S3
	DDB            DDB
	Lambda         Lambda
	SecretsManager SecretsManager
}

var current Host

// Bind installs the host binding for this invocation. The transport layer
// calls it once before the guest handler runs; tests call it with an
// in-memory host. The guest is single-threaded, so no locking is needed.
func Bind(h Host) {
	current = h
}

// Bound reports whether any binding has been installed.
func Bound() bool {
	return current != Host{}
}

func capability[T comparable](name string, c T) T {
	var zero T
	if c == zero {
		panic(fmt.Sprintf("hostabi: capability %q is not bound", name))
	}
	return c
}

// Typed accessors. Each panics when the capability is absent: an unbound
// capability is a deployment error, not a runtime condition a function can
// recover from.

func CacheScalarAPI() CacheScalar { return capability("cache_scalar", current.Cache) }

func CacheListAPI() CacheList { return capability("cache_list", current.CacheList) }

func TopicsAPI() Topics { return capability("topic", current.Topics) }

func RedisAPI() Redis { return capability("redis", current.Redis) }

func HTTPAPI() HTTP { return capability("http", current.HTTP) }

func LoggingAPI() Logging { return capability("logging", current.Logging) }

func SpawnAPI() Spawn { return capability("spawn", current.Spawn) }

func WebSupportAPI() WebSupport { return capability("web_function_support", current.Web) }

func TokensAPI() Tokens { return capability("token", current.Tokens) }

func AWSAuthAPI() AWSAuth { return capability("aws_auth", current.AWSAuth) }

func S3API() S3 { return capability("aws_s3", current.S3) }

func DDBAPI() DDB { return capability("aws_ddb", current.DDB) }

func LambdaAPI() Lambda { return capability("aws_lambda", current.Lambda) }

func SecretsManagerAPI() SecretsManager {
	return capability("aws_secrets", current.SecretsManager)
}
