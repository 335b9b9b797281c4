package activity

// RecordKind tells a backend what a record stands for.
type RecordKind uint8

const (
	// RecordMessage is a standalone message.
	RecordMessage RecordKind = iota
	// RecordActivityEntry is written when an activity opens.
	RecordActivityEntry
	// RecordActivityExit is written when an activity with a context closes.
	RecordActivityExit
	// RecordActivityStandalone carries both the description and the outcome
	// of an activity that never had a context.
	RecordActivityStandalone
)

func (k RecordKind) String() string {
	switch k {
	case RecordMessage:
		return "message"
	case RecordActivityEntry:
		return "activity-entry"
	case RecordActivityExit:
		return "activity-exit"
	case RecordActivityStandalone:
		return "activity-standalone"
	default:
		return "unknown"
	}
}

// ItemKind is the kind of one item written into a record.
type ItemKind uint8

const (
	// ItemMessage is the body of a message record.
	ItemMessage ItemKind = iota
	// ItemActivityDescription describes an activity.
	ItemActivityDescription
	// ItemActivityOutcome describes how an activity ended.
	ItemActivityOutcome
)

func (k ItemKind) String() string {
	switch k {
	case ItemMessage:
		return "message"
	case ItemActivityDescription:
		return "description"
	case ItemActivityOutcome:
		return "outcome"
	default:
		return "unknown"
	}
}

// Outcome is how an activity ended.
type Outcome uint8

const (
	// OutcomeNone is used for records that are not activity exits.
	OutcomeNone Outcome = iota
	// OutcomeSucceeded is set by SetSuccess, SetResult and by SetOutcome
	// without an error.
	OutcomeSucceeded
	// OutcomeFailed is set by SetException and by SetOutcome with an error.
	OutcomeFailed
	// OutcomeIndeterminate is set when an open activity is disposed without
	// an explicit outcome.
	OutcomeIndeterminate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "Succeeded"
	case OutcomeFailed:
		return "Failed"
	case OutcomeIndeterminate:
		return "Indeterminate"
	default:
		return ""
	}
}

// RecordOptions are given to LocalLogger.RecordBuilder.
type RecordOptions struct {
	Kind    RecordKind
	Level   Level
	Outcome Outcome
	// Source is the name of the Source writing the record.
	Source string
	// Properties are the properties of the record itself; inherited
	// properties of enclosing contexts are the backend's business.
	Properties *PropertyBag
}

// TextOptions are given when an item begins.
type TextOptions struct {
	// Hidden items are recorded for structure but not rendered as text.
	Hidden bool
}

// ParameterMode chooses how a parameter is rendered.
type ParameterMode uint8

const (
	// ParameterValue renders the value only.
	ParameterValue ParameterMode = iota
	// ParameterNameValue renders "name=value".
	ParameterNameValue
	// ParameterHidden suppresses the parameter from the text entirely.
	ParameterHidden
)

func (m ParameterMode) String() string {
	switch m {
	case ParameterValue:
		return "value"
	case ParameterNameValue:
		return "name-value"
	case ParameterHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// ParameterOptions are given per parameter.
type ParameterOptions struct {
	Mode ParameterMode
	// Format is an optional format suffix taken from the template hole.
	Format string
}

// RecordBuilder writes one record. It is used sequentially and once:
//
//	BeginWriteItem -> (WriteParameter | WriteString)* -> SetException? -> Complete
//
// Complete commits the record. Dispose must always be called; disposing a
// builder that was not completed abandons the record and writes nothing.
type RecordBuilder interface {
	BeginWriteItem(kind ItemKind, opts TextOptions)
	WriteParameter(index int, name string, value interface{}, opts ParameterOptions)
	WriteString(s string)
	SetException(err error)
	Complete()
	Dispose()
}

//counterfeiter:generate . RecordBuilder
