package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Occupies diz se o status ainda segura a cadeira: agendamentos cancelados
// ou concluídos não bloqueiam o horário.
func Occupies(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

// ===============================
// Sync state (local mirror)
// ===============================

type SyncStatus string

const (
	SyncSynced SyncStatus = "synced"
	SyncLocal  SyncStatus = "local_only"
	// Definido mas nunca produzido: não existe processo de reconciliação.
	SyncConflict SyncStatus = "conflict_unresolved"
)
