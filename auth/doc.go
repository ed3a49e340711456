// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth validates the shared administrative passphrase.

# Admin Passphrase

Administrative operations (schedule and results replacement) are gated by a
single static passphrase supplied in the X-Admin-Pass header:

	err := auth.ValidateAdminPass(r.Header.Get("X-Admin-Pass"), cfg.AdminPass)

Validation hashes both sides with SHA-256 and compares with hmac.Equal, so
the check runs in constant time regardless of input length. There is no
per-user identity and no session: every failure, including a missing header,
produces the same ErrInvalidPassphrase so callers can return one generic
denial message.
*/
package auth
