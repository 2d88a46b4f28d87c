package report

import "strings"

// NormalizeHeaders trims every header. It returns the rename map keyed by the
// header as found in the file and the trimmed headers in column order.
// Headers that collide after trimming are all kept in the list; see
// DuplicateHeaders.
func NormalizeHeaders(raw []string) (HeaderRenameMap, []string) {
	rename := make(HeaderRenameMap, len(raw))
	headers := make([]string, len(raw))
	for i, h := range raw {
		n := strings.TrimSpace(h)
		rename[h] = n
		headers[i] = n
	}
	return rename, headers
}

// DuplicateHeaders returns the normalized headers that occur more than once,
// in order of first appearance. For those columns the right-most value wins.
func DuplicateHeaders(headers []string) []string {
	seen := make(map[string]int, len(headers))
	var dups []string
	for _, h := range headers {
		seen[h]++
		if seen[h] == 2 {
			dups = append(dups, h)
		}
	}
	return dups
}

// IsBlank reports whether the record holds no value after trimming.
// When identical headers repeat, only the right-most cell of each counts,
// the same cell NormalizeRows keeps.
func IsBlank(rec RawRecord) bool {
	for _, f := range rec {
		if v, _ := rec.Get(f.Header); strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// NormalizeRows drops blank records and re-keys the rest through rename,
// trimming every value. File order is kept.
func NormalizeRows(rows []RawRecord, rename HeaderRenameMap) []NormalizedRecord {
	out := make([]NormalizedRecord, 0, len(rows))
	for _, rec := range rows {
		if IsBlank(rec) {
			continue
		}

		norm := make(NormalizedRecord, len(rec))
		for _, f := range rec {
			key, ok := rename[f.Header]
			if !ok {
				key = strings.TrimSpace(f.Header)
			}
			norm[key] = strings.TrimSpace(f.Value)
		}
		out = append(out, norm)
	}
	return out
}

// MissingColumns returns the required columns absent from headers, in the
// order of RequiredColumns. It returns nil when nothing is missing.
func MissingColumns(headers []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
