package account

import "fmt"

// Model is the caller identity established by the gateway. Token issuance and
// verification happen upstream; this service only consumes the outcome.
type Model struct {
	Id    uint32 `json:"id"`
	Name  string `json:"name"`
	Staff bool   `json:"staff"`
}

func (m Model) String() string {
	return fmt.Sprintf("Id [%d] Name [%s] Staff [%t]", m.Id, m.Name, m.Staff)
}

// Allows is the single ownership predicate applied at the store boundary.
// Staff callers must additionally request find_all to widen list results.
func Allows(caller Model, ownerAccountId uint32, findAll bool) bool {
	if caller.Staff && findAll {
		return true
	}
	return caller.Id == ownerAccountId
}

// Owns reports whether the caller may read or mutate an entity owned by the
// given account.
func Owns(caller Model, ownerAccountId uint32) bool {
	if caller.Staff {
		return true
	}
	return caller.Id == ownerAccountId
}
