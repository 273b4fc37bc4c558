package errors

type Code string

const (
	CodeInvalidStrength      Code = "INVALID_STRENGTH"
	CodeEntropyTooShort      Code = "ENTROPY_TOO_SHORT"
	CodeEntropyTooLong       Code = "ENTROPY_TOO_LONG"
	CodeInvalidEntropyLength Code = "INVALID_ENTROPY_LENGTH"
	CodeInvalidMnemonic      Code = "INVALID_MNEMONIC"
	CodeChecksumMismatch     Code = "CHECKSUM_MISMATCH"
	CodeInvalidMasterKey     Code = "INVALID_MASTER_KEY"
	CodeInvalidChildKey      Code = "INVALID_CHILD_KEY"
	CodeInvalidPrivateKey    Code = "INVALID_PRIVATE_KEY"
	CodeInvalidWordlist      Code = "INVALID_WORDLIST"
	CodeInvalidPath          Code = "INVALID_DERIVATION_PATH"
	CodeInvalidAddress       Code = "INVALID_ADDRESS"
	CodeInvalidRequest       Code = "INVALID_REQUEST"
	CodeNotFound             Code = "NOT_FOUND"
	CodeStorage              Code = "STORAGE_ERROR"
	CodeInternal             Code = "INTERNAL_ERROR"
)
