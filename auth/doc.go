// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth validates the admin token that gates mutating endpoints.

Reads are public; any request that writes (creating organisms or projects,
adding citations, funding, or associations, deleting rows) must carry the
configured token in the X-Admin-Token header. The comparison uses
hmac.Equal to stay constant time.
*/
package auth
