// Package installer produces platform-native distributables from a staged
// runtime tree: an NSIS setup executable on Windows and a compressed disk
// image on macOS. Both shell out to the platform tool (makensis, hdiutil)
// through a types.CommandRunner.
package installer
