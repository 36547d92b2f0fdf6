package domain

// ItemStatus is the lifecycle state of a physical item.
type ItemStatus string

const (
	ItemStatusAvailable   ItemStatus = "available"
	ItemStatusInUse       ItemStatus = "in_use"
	ItemStatusMaintenance ItemStatus = "maintenance"
	ItemStatusDamaged     ItemStatus = "damaged"
	ItemStatusLost        ItemStatus = "lost"
	ItemStatusAbandoned   ItemStatus = "abandoned"
	ItemStatusProhibited  ItemStatus = "prohibited"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusAvailable, ItemStatusInUse, ItemStatusMaintenance, ItemStatusDamaged,
		ItemStatusLost, ItemStatusAbandoned, ItemStatusProhibited:
		return true
	}
	return false
}

// RecordType separates income from expense.
type RecordType string

const (
	RecordTypeExpense RecordType = "expense"
	RecordTypeIncome  RecordType = "income"
)

func (t RecordType) String() string { return string(t) }

func (t RecordType) IsValid() bool {
	return t == RecordTypeExpense || t == RecordTypeIncome
}

// Gender of a personnel member.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// JobStatus is the outcome of one maintenance job execution.
type JobStatus string

const (
	JobStatusRunning JobStatus = "running"
	JobStatusSuccess JobStatus = "success"
	JobStatusFailed  JobStatus = "failed"
)

func (s JobStatus) String() string { return string(s) }
