// Package store defines the key-value persistence interface consumed by
// the progress, unknown-word, and sentence stores, along with the key
// naming scheme shared by every backend. Concrete implementations live
// under internal/platform.
package store
