package constants

type ContextKey string

const (
	TxKey        ContextKey = "tx"
	PoolKey      ContextKey = "pool"
	LoggerKey    ContextKey = "logger"
	ParamsKey    ContextKey = "params"
	AppKey       ContextKey = "app"
	RequestStart ContextKey = "requestStart"
	RequestIDKey ContextKey = "requestID"
	LocalizerKey ContextKey = "localizer"
	LocaleKey    ContextKey = "locale"
)
