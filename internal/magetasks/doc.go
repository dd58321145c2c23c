// Package magetasks provides the build, test and lint tasks behind the
// lastrun Magefile. Commands run through github.com/magefile/mage/sh so
// their output streams when mage is invoked with -v.
package magetasks
