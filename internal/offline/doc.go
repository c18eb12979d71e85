// Package offline keeps the web dashboard usable without a network.
//
// A Proxy sits in front of the dashboard origin and answers requests from
// named cache generations:
//
//   - Install pre-fetches a fixed asset list into the current generation. It is
//     all-or-nothing: if any asset fails, nothing is stored.
//   - Activate deletes every generation whose name differs from the current
//     one, so bumping the name is how stale assets get retired.
//   - Page navigations go to the network first. A successful page is stored
//     under "/"; when the network is down the proxy answers with the cached
//     "/" or, failing that, "/index.html".
//   - Other same-origin GETs are answered from the cache when possible and
//     fetched (then stored) otherwise.
//   - Anything else is forwarded untouched.
//
// Generations live in a Storage: MemoryStorage keeps them in a freecache
// ring, DiskStorage keeps one directory per generation.
package offline
