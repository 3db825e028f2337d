// Package models defines the core domain models for HaleWay checklists.
//
// # Models
//
//   - Template: reusable, trip-independent blueprint (system or user-owned)
//   - TemplateItem: stateless item inside a Template
//   - Checklist: trip-scoped instance of a packing or grocery list
//   - ChecklistItem: stateful item (packed/purchased) inside a Checklist
//
// Trips, users and families live in other services; they are referenced here
// by plain identifier strings only.
//
// # Kinds and quantities
//
// Every Template and Checklist has a Kind. The kind decides how an item's
// quantity is interpreted:
//
//   - KindPacking: Count, a positive integer ("Sunglasses" x 3)
//   - KindGrocery: Amount, opaque free text ("2 lbs", "6 pack")
//
// Quantities are resolved once, at the storage and RPC boundaries, with
// ParseQuantity. Everything downstream handles the Quantity interface and
// never re-checks the concrete type.
//
// # Design Principles
//
//  1. Copies, not references: duplicating a Template into a Checklist (or back)
//     always produces new item rows.
//  2. IDs, not pointers: relationships are expressed with ID strings.
//  3. Categories are free text: renaming one is a bulk string update.
package models
