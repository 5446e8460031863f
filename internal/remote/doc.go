// Package remote dispatches the status command to other Autophone hosts
// over SSH.
//
// Hosts are visited strictly in argument order, one session at a time. Each
// host gets a delimiter line, a login-profile initialization with ordered
// fallback, and the remote ap-jobs invocation; remote output streams through
// unmodified. A failing host is reported inline and never stops the loop.
package remote
