package svgflat

import (
	"bytes"
	"encoding/xml"
	"regexp"

	"golang.org/x/net/html/charset"
)

// entityDecl matches a general entity declaration with a literal value.
// Parameter entities and external entities are not matched.
var entityDecl = regexp.MustCompile(`<!ENTITY\s+([A-Za-z_:][-A-Za-z0-9_.:]*)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// declaredEntities returns the internal entities declared in the document
// type declaration of src, such as the namespace entities written by
// illustration software. Only the prolog is read; a document that is
// malformed there yields no entities and fails later, in the real parse.
func declaredEntities(src []byte) map[string]string {
	dec := xml.NewDecoder(bytes.NewReader(src))
	dec.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := dec.RawToken()
		if err != nil {
			return nil
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			return nil
		case xml.Directive:
			var ents map[string]string
			for _, m := range entityDecl.FindAllStringSubmatch(string(tok), -1) {
				if ents == nil {
					ents = make(map[string]string)
				}
				// At most one of the quoted alternatives matched.
				ents[m[1]] = m[2] + m[3]
			}
			if ents != nil {
				return ents
			}
		}
	}
}
