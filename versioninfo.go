package verstamp

import "github.com/josephspurrier/goversioninfo"

// VersionInfo maps the descriptor onto the VERSIONINFO structure the
// resource-embedding step consumes. The numeric tuples land in the
// fixed-file-info block and the derived strings in the string-file-info
// block; serializing the structure into the binary is left to the
// caller (typically goversioninfo's own syso writer).
func (d Descriptor) VersionInfo() *goversioninfo.VersionInfo {
	return &goversioninfo.VersionInfo{
		FixedFileInfo: goversioninfo.FixedFileInfo{
			FileVersion: goversioninfo.FileVersion{
				Major: d.FileVersion[0],
				Minor: d.FileVersion[1],
				Patch: d.FileVersion[2],
				Build: d.FileVersion[3],
			},
			ProductVersion: goversioninfo.FileVersion{
				Major: d.ProductVersion[0],
				Minor: d.ProductVersion[1],
				Patch: d.ProductVersion[2],
			},
			FileFlagsMask: "3f",
			FileFlags:     "00",
			FileOS:        "040004",
			FileType:      "01",
			FileSubType:   "00",
		},
		StringFileInfo: goversioninfo.StringFileInfo{
			CompanyName:     d.CompanyName,
			FileDescription: d.FileDescription,
			FileVersion:     d.FileVersionString,
			LegalCopyright:  d.LegalCopyright,
			ProductName:     d.ProductName,
			ProductVersion:  d.ProductVersionString,
		},
		VarFileInfo: goversioninfo.VarFileInfo{
			Translation: goversioninfo.Translation{
				LangID:    goversioninfo.LngUSEnglish,
				CharsetID: goversioninfo.CsUnicode,
			},
		},
	}
}
