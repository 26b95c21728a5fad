package server

import (
	"net/http"
	"strings"
)

// DefaultAPIVersion is used when the client does not negotiate one.
const DefaultAPIVersion = "v1"

const vendorMediaTypePrefix = "application/vnd.nvidia.datacontract."

var supportedAPIVersions = map[string]bool{
	"v1": true,
}

func isValidAPIVersion(version string) bool {
	return supportedAPIVersions[version]
}

// negotiateAPIVersion inspects the Accept header for the vendor media type
// (application/vnd.nvidia.datacontract.v1+json) and returns the requested
// API version, falling back to DefaultAPIVersion for anything unsupported.
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(strings.Split(part, ";")[0])
		if !strings.HasPrefix(mediaType, vendorMediaTypePrefix) {
			continue
		}
		rest := strings.TrimPrefix(mediaType, vendorMediaTypePrefix)
		version := strings.TrimSuffix(rest, "+json")
		if isValidAPIVersion(version) {
			return version
		}
	}
	return DefaultAPIVersion
}
