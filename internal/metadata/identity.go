package metadata

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceScriptIdentity is the UUID namespace for deterministic script
// namespaces, derived from "monkeyscript/script-identity/v1".
var NamespaceScriptIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("monkeyscript/script-identity/v1"))

// GenerateNamespace returns a stable "urn:uuid:" namespace for a script
// name. Names differing only in case or surrounding space share a namespace.
func GenerateNamespace(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	return uuid.NewSHA1(NamespaceScriptIdentity, []byte(normalized)).URN()
}
