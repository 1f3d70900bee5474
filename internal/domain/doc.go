// Package domain models historical nuclear test records (1945–1998).
//
// # Data Source
//
// Records originate from the public "Nuclear Explosions" dataset, a single
// CSV file with dotted/spaced column names inherited from its publisher
// (including the misspelled "Location.Cordinates.*" prefix, which is
// preserved verbatim because it is what the file actually contains).
//
// # Dataset Conventions
//
// Location label:
//
//	"<deployment location>, <source country>"  →  e.g. "Semipalatinsk, USSR"
//	Derived at load time from WEAPON DEPLOYMENT LOCATION and
//	WEAPON SOURCE COUNTRY; never present in the source file.
//
// Depth:
//
//	Meters, sign convention of the source data. Negative values may denote
//	altitude for atmospheric shots. Values are preserved raw — no
//	normalization and no sign inference is applied anywhere.
//
// Category:
//
//	An alias of the test type column (Data.Type). Filtering and chart
//	grouping use Category; the two are identical by construction.
//
// Rows missing any required field are dropped during load and never surface
// in a Dataset. A Dataset is immutable after load and safe to share
// read-only across requests.
package domain
