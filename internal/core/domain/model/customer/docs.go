// Package customer models parcel recipients: a Customer owns exactly one
// Address, and the Address is the only mutable part of a Customer.
//
// Key business rules:
//   - Street and number are required
//   - Postal codes follow the national NNNNAA format (four digits, two letters)
//   - Postal codes are normalized to upper case without spaces before storage
//   - Updating an address replaces every field, keeps created-at and stamps updated-at
package customer
