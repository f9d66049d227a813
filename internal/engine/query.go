package engine

import "github.com/settleup/backend/internal/models"

// IncomingTransfers filters a settlement plan down to the transfers payable
// to userID: what others owe this user. An unknown user yields an empty
// list.
func IncomingTransfers(transfers []models.Transfer, userID string) []models.Transfer {
	var out []models.Transfer
	for _, t := range transfers {
		if t.To == userID {
			out = append(out, t)
		}
	}
	return out
}

// OutgoingTransfers filters a settlement plan down to the transfers owed by
// userID: what this user owes others.
func OutgoingTransfers(transfers []models.Transfer, userID string) []models.Transfer {
	var out []models.Transfer
	for _, t := range transfers {
		if t.From == userID {
			out = append(out, t)
		}
	}
	return out
}
