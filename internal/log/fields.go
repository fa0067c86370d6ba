package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldBackend    = "backend"
	FieldKey        = "key"
	FieldBytes      = "bytes"
	FieldTxID       = "tx_id"
	FieldTxText     = "tx_text"
	FieldAmount     = "amount"
	FieldCount      = "count"
	FieldBalance    = "balance"
	FieldEventKind  = "event_kind"
	FieldExchange   = "exchange"
	FieldQueue      = "queue"
	FieldPath       = "path"
	FieldRemoved    = "removed"
	FieldRolledBack = "rolled_back"
	FieldErrorType  = "error_type"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentBackend = "backend"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpLoad    = "load"
	OpAdd     = "add"
	OpRemove  = "remove"
	OpClear   = "clear"
	OpSave    = "save"
	OpPublish = "publish"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation      = "validation_error"
	ErrorTypeDatabase        = "database_error"
	ErrorTypeDeserialization = "deserialization_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error category field
func (f LogFields) WithErrorType(errorType string) LogFields {
	f[FieldErrorType] = errorType
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithTransaction adds transaction-related fields
func (f LogFields) WithTransaction(id int64, text string, amount float64) LogFields {
	f[FieldTxID] = id
	f[FieldTxText] = text
	f[FieldAmount] = amount
	return f
}

// WithLedgerState adds the size and balance of the ledger after a change
func (f LogFields) WithLedgerState(count int, balance float64) LogFields {
	f[FieldCount] = count
	f[FieldBalance] = balance
	return f
}

// WithKey adds the storage key field
func (f LogFields) WithKey(key string) LogFields {
	f[FieldKey] = key
	return f
}

// With adds an arbitrary field
func (f LogFields) With(key string, value any) LogFields {
	f[key] = value
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
