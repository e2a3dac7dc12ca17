package upload

// Size conversions use decimal units: 1 KB = 1000 bytes, 1 MB = 1000 KB.

func BytesToKB(b int64) float64 { return float64(b) / 1000 }

func BytesToMB(b int64) float64 { return float64(b) / 1_000_000 }

func KBToBytes(kb int64) int64 { return kb * 1000 }

func KBToMB(kb int64) float64 { return float64(kb) / 1000 }

func MBToBytes(mb int64) int64 { return mb * 1_000_000 }

func MBToKB(mb int64) int64 { return mb * 1000 }
