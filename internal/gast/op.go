package gast

// Operator is the vocabulary shared by unary and binary expressions across
// all source languages. Front ends map their concrete operator syntax into
// this set; anything without a match goes through OpOther plus an
// OtherExpr payload carrying the original spelling.
type Operator uint8

const (
	OpPlus Operator = iota
	OpMinus
	OpMult
	OpDiv
	OpMod
	OpPow
	OpFloorDiv
	OpLSL
	OpLSR
	OpASR
	OpBitOr
	OpBitXor
	OpBitAnd
	OpBitNot
	OpAnd
	OpOr
	OpXor
	OpNot
	OpEq
	OpNotEq
	OpPhysEq
	OpNotPhysEq
	OpLt
	OpLtE
	OpGt
	OpGtE
	OpCmp
	OpConcat
	OpAppend
	OpRegexpMatch
	OpNotMatch
	OpRange
	OpRangeInclusive
	OpIn
	OpNotIn
	OpIs
	OpNotIs
	OpElvis
	OpNullish
	OpUnaryPlus
	OpUnaryMinus
	OpOther
)

var operatorNames = [...]string{
	OpPlus:           "Plus",
	OpMinus:          "Minus",
	OpMult:           "Mult",
	OpDiv:            "Div",
	OpMod:            "Mod",
	OpPow:            "Pow",
	OpFloorDiv:       "FloorDiv",
	OpLSL:            "LSL",
	OpLSR:            "LSR",
	OpASR:            "ASR",
	OpBitOr:          "BitOr",
	OpBitXor:         "BitXor",
	OpBitAnd:         "BitAnd",
	OpBitNot:         "BitNot",
	OpAnd:            "And",
	OpOr:             "Or",
	OpXor:            "Xor",
	OpNot:            "Not",
	OpEq:             "Eq",
	OpNotEq:          "NotEq",
	OpPhysEq:         "PhysEq",
	OpNotPhysEq:      "NotPhysEq",
	OpLt:             "Lt",
	OpLtE:            "LtE",
	OpGt:             "Gt",
	OpGtE:            "GtE",
	OpCmp:            "Cmp",
	OpConcat:         "Concat",
	OpAppend:         "Append",
	OpRegexpMatch:    "RegexpMatch",
	OpNotMatch:       "NotMatch",
	OpRange:          "Range",
	OpRangeInclusive: "RangeInclusive",
	OpIn:             "In",
	OpNotIn:          "NotIn",
	OpIs:             "Is",
	OpNotIs:          "NotIs",
	OpElvis:          "Elvis",
	OpNullish:        "Nullish",
	OpUnaryPlus:      "UnaryPlus",
	OpUnaryMinus:     "UnaryMinus",
	OpOther:          "Other",
}

func (op Operator) String() string {
	if int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "Other"
}

func (op Operator) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// UnmarshalText maps unknown operator names to OpOther, keeping old
// decoders compatible with a grown vocabulary.
func (op *Operator) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range operatorNames {
		if name == s {
			*op = Operator(i)
			return nil
		}
	}
	*op = OpOther
	return nil
}

// ContainerKind is the shared container-operator tag: composite values,
// comprehensions and container patterns all reuse it, so one traversal can
// treat them uniformly when the concrete container does not matter.
type ContainerKind uint8

const (
	ContainerArray ContainerKind = iota
	ContainerList
	ContainerSet
	ContainerDict
	ContainerTuple
)

var containerKindNames = [...]string{
	ContainerArray: "Array",
	ContainerList:  "List",
	ContainerSet:   "Set",
	ContainerDict:  "Dict",
	ContainerTuple: "Tuple",
}

func (k ContainerKind) String() string {
	if int(k) < len(containerKindNames) {
		return containerKindNames[k]
	}
	return "Array"
}

func (k ContainerKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ContainerKind) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range containerKindNames {
		if name == s {
			*k = ContainerKind(i)
			return nil
		}
	}
	*k = ContainerArray
	return nil
}
