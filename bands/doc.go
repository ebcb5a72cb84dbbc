// Package bands exposes the fixed one-third-octave band reference data of
// ANSI S3.5-1997 (Table 3 and Table B.2): band center frequencies and
// bandwidths, the reference internal noise spectrum, the standard speech
// spectra for the four vocal efforts, the band-importance functions for the
// standard speech test materials, and the free-field-to-eardrum transfer
// function.
//
// All tables cover the 18 bands from 160 Hz to 8000 Hz, ordered by
// increasing center frequency. They are immutable package-level constants;
// every accessor returns a fresh copy, so the shared tables are safe for
// concurrent use and cannot be mutated through a returned slice.
package bands
