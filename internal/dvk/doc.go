// Package dvk defines the DVK record type and reads records from their
// .dvk sidecar files.
//
// A .dvk file is a small JSON document stored next to the media file it
// describes:
//
//	{
//	  "file_type": "dvk",
//	  "id": "PGL1234567",
//	  "info": {
//	    "title": "Title",
//	    "artists": ["Artist"],
//	    "time": "2019/05/02|14:30",
//	    "web_tags": ["tag"],
//	    "rating": 4,
//	    "views": 120
//	  },
//	  "web": {"page_url": "https://...", "direct_url": "https://..."},
//	  "file": {"media_file": "title_PGL1234567.png"}
//	}
//
// # Reading Records
//
// Read a single file, or every record directly inside one directory:
//
//	d, err := dvk.ReadDvk("/archive/artist/title_PGL1234567.dvk")
//	dvks := dvk.ReadDvkDirectory("/archive/artist")
//
// ReadDvkDirectory is deliberately forgiving: unreadable directories and
// malformed files are skipped, never surfaced as errors. Recursive
// discovery across a directory tree lives in the archive package.
package dvk
