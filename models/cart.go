package models

// CartItem is one (variant, quantity) pair in the local cart. The local cart
// is the source of truth; the remote platform cart is a derived mirror.
type CartItem struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// RemoteCart is the platform cart as read back after a sync. Diagnostic only.
type RemoteCart struct {
	Token     string           `json:"token,omitempty"`
	ItemCount int              `json:"item_count"`
	Items     []RemoteCartItem `json:"items"`
}

type RemoteCartItem struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
	Title     string `json:"title,omitempty"`
}

// SyncStep names one step of the cart sync state machine.
type SyncStep string

const (
	SyncStepClear  SyncStep = "clear"
	SyncStepAdd    SyncStep = "add"
	SyncStepVerify SyncStep = "verify"
)

// SyncStepResult records the outcome of a single step. Add steps carry the
// variant they were adding; Skipped marks items dropped for a missing
// variant ID.
type SyncStepResult struct {
	Step      SyncStep `json:"step"`
	VariantID string   `json:"variant_id,omitempty"`
	OK        bool     `json:"ok"`
	Skipped   bool     `json:"skipped,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// SyncReport is the aggregate result of one sync pass. Success follows the
// documented asymmetry: a failed clear fails the sync, failed adds do not.
type SyncReport struct {
	Success    bool             `json:"success"`
	Steps      []SyncStepResult `json:"steps"`
	RemoteCart *RemoteCart      `json:"remote_cart,omitempty"`
}

// FailedAdds lists the variants whose add step failed, for diagnostics.
func (r *SyncReport) FailedAdds() []string {
	var failed []string
	for _, s := range r.Steps {
		if s.Step == SyncStepAdd && !s.OK && !s.Skipped {
			failed = append(failed, s.VariantID)
		}
	}
	return failed
}
