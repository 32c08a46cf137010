package redis

const (
	// KeyPrefixShortcut is the prefix for shortcut record keys
	KeyPrefixShortcut = "pindrop:shortcut:"
	// KeyAllShortcuts is the key for the set of all shortcut IDs
	KeyAllShortcuts = "pindrop:shortcuts:all"
	// KeyClipboardLedger is the sorted set backing the clipboard cooldown ledger
	KeyClipboardLedger = "pindrop:clipboard:ledger"
)

// ShortcutKey returns the Redis key for a shortcut by ID
func ShortcutKey(id string) string {
	return KeyPrefixShortcut + id
}

// AllShortcutsKey returns the key for the set of all shortcut IDs
func AllShortcutsKey() string {
	return KeyAllShortcuts
}

// ClipboardLedgerKey returns the key for the clipboard cooldown ledger
func ClipboardLedgerKey() string {
	return KeyClipboardLedger
}
