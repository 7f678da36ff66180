package updates

import "fmt"

// manifestBody is the AUS update manifest served to polling agents. The
// layout is a wire contract: agents in the field parse exactly this shape, so
// it must stay byte-for-byte stable.
const manifestBody = `<?xml version="1.0"?>
<updates>
  <update type="minor" appVersion="%[1]s" version="%[1]s" extensionVersion="%[1]s" buildID="%[2]s" licenseURL="http://www.mozilla.com/test/sample-eula.html" detailsURL="http://www.mozilla.com/test/sample-details.html">
    <patch type="complete" URL="%[3]s/%[4]s/%[5]s%[6]s" hashFunction="SHA512" hashValue="%[7]s" size="%[8]d"/>
  </update>
</updates>`

// Renderer formats update manifests.
type Renderer struct {
	// BaseURL is the download host, e.g. "http://update.boot2gecko.org".
	BaseURL string
	// Path is the path segment between the host and the artifact filename.
	Path string
}

// Render produces the manifest for u. dogfoodID, when non-empty, is passed
// through verbatim as the dogfooding_prerelease_id query parameter of the
// download URL; the value is opaque to the server. Rendering resolves the
// update's companion metadata and content hash as a side effect.
func (r *Renderer) Render(u *Update, dogfoodID string) (string, error) {
	app, err := u.Application()
	if err != nil {
		return "", err
	}
	hash, err := u.Hash()
	if err != nil {
		return "", err
	}
	var query string
	if dogfoodID != "" {
		query = "?dogfooding_prerelease_id=" + dogfoodID
	}
	return fmt.Sprintf(manifestBody,
		app.Version, app.BuildID, r.BaseURL, r.Path, u.Filename, query, hash, u.Size), nil
}
