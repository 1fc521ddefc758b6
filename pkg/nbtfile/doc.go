/*
Package nbtfile reads and writes NBT files on disk.

Files may be stored raw or under gzip, zlib, zstd or LZ4; the compression is
detected from the leading magic bytes on read and chosen explicitly on write.

# Basic Usage

Read a file:

	tag, kind, err := nbtfile.Read("level.dat", nil)
	if err != nil {
	    log.Fatal(err)
	}

Write it back with the same compression:

	err = nbtfile.Write("level.dat", tag, kind, nil)

Re-encode under another compression:

	err = nbtfile.Convert("level.dat", "level.zst", compress.Zstd, nil)

Writes go to a temporary file that is renamed over the target, so a failed
write never leaves a truncated file behind.

# Error Handling

Decode failures are *types.Error values and can be matched with errors.Is
against the sentinels in pkg/types, for example types.ErrTruncated.
*/
package nbtfile
