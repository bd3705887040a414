// Package services contains the application services of the shopkeeper
// client:
//
//   - AuthService submits credentials and resolves the signed-in user's
//     profile;
//   - SessionStore persists the session token and display name locally;
//   - Directory and Catalog hold the last fetched user and product lists.
//
// Services wrap transport and storage failures in the sentinel errors of
// package common so the front end can choose its message with errors.Is.
package services
