package common

// UnknownStr is the fallback String() value for out-of-range enum values.
const UnknownStr = "unknown"
