// Package domain contains the core catalog entities: cars with their embedded
// value objects, the lookup entities (makes, features, body styles), the car
// lifecycle status, the sortable-field allow-list and the error taxonomy shared
// by every layer. It is independent of any storage or delivery mechanism.
package domain
