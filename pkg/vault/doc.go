// Package vault keeps account passwords in a single section of an INI file.
//
// The whole section is rewritten after every mutation, there is no
// incremental update and no transaction log. Passwords are stored in
// plaintext, the file is only protected by its 0600 permissions.
//
//	[Passwords]
//	email  = hunter2
//	github = s3cr3t
package vault
