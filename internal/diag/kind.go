package diag

// Kind categorizes a diagnostic by the stage that produced it. Consumers
// pick recovery policy by kind: lexical and syntax failures usually leave
// a partial tree worth keeping, internal failures mean a producer bug,
// timeout and resource failures are environmental and retryable.
type Kind uint8

const (
	// KindLexical is a tokenization failure.
	KindLexical Kind = iota
	// KindSyntax is a parse or decode failure.
	KindSyntax
	// KindInternal is a bug in a tree producer or pass.
	KindInternal
	// KindRulePattern is a malformed query or rule pattern.
	KindRulePattern
	// KindConfig is an invalid configuration value.
	KindConfig
	// KindTimeout is a per-unit deadline expiry.
	KindTimeout
	// KindResource is memory or file-handle exhaustion.
	KindResource
)

var kindNames = [...]string{
	KindLexical:     "lexical",
	KindSyntax:      "syntax",
	KindInternal:    "internal",
	KindRulePattern: "rule-pattern",
	KindConfig:      "config",
	KindTimeout:     "timeout",
	KindResource:    "resource",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "internal"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range kindNames {
		if name == s {
			*k = Kind(i)
			return nil
		}
	}
	*k = KindInternal
	return nil
}
