// Package localstore is the client-side persisted key-value store. It is
// the durable home of the cart, the session fields and the last created
// order, surviving restarts the way the web client's localStorage survives
// page reloads.
package localstore

// Keys used by the storefront. One flat namespace per store path; the cart
// key is intentionally not scoped per logged-in user.
const (
	KeyCartItems    = "cartItems"
	KeyCurrentOrder = "currentOrder"
	KeyToken        = "token"
	KeyUserID       = "userId"
	KeyUserRole     = "userRole"
	KeyUserName     = "userName"
	KeyLang         = "lang"
)

// Store reads and writes string values under string keys. Writes are
// full-value overwrites; concurrent writers are last-write-wins.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}
