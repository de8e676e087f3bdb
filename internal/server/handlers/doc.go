// Package handlers provides the HTTP handlers for the consent flow
// stages (language select, guidance, sign, download, generate-pdf)
// and the general infrastructure handlers (health, version).
//
// The flow views are server-rendered html/template pages embedded in
// the binary; the continuity state between stages travels in query and
// form parameters, never server-side.
package handlers
