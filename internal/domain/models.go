// internal/domain/models.go
package domain

import "time"

type User struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	ProfileImage  string    `json:"profileImage,omitempty"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Category is a user-owned label. NameKey is the folded form of Name and is
// what per-user uniqueness is enforced on.
type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	NameKey   string    `json:"-"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Expense references its category by name, not by id.
type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Amount      Money     `json:"amount"`
	Date        Date      `json:"date"`
	Category    string    `json:"category"`
	Emoji       string    `json:"emoji"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PropagationKind string

const (
	PropagationRename PropagationKind = "rename"
	PropagationDelete PropagationKind = "delete"
)

type PropagationStatus string

const (
	PropagationPending PropagationStatus = "pending"
	PropagationDone    PropagationStatus = "done"
)

// Propagation is an entry of the compensating log written before the
// expense-side step of a rename or delete, and cleared once it completes.
type Propagation struct {
	ID         string            `json:"id"`
	UserID     string            `json:"userId"`
	Kind       PropagationKind   `json:"kind"`
	CategoryID string            `json:"categoryId"`
	OldName    string            `json:"oldName"`
	NewName    string            `json:"newName,omitempty"`
	Status     PropagationStatus `json:"status"`
	Attempts   int               `json:"attempts"`
	LastError  string            `json:"lastError,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// LinkCode is a one-time code binding a Telegram chat to a user.
type LinkCode struct {
	Code      string    `json:"code"`
	UserID    string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}
