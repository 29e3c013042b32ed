/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  boot0_test.go - Tests de l'informe complet.
 *
 */

package egon

import (
  "bytes"
  "errors"
  "strings"
  "testing"
)


/*********/
/* TESTS */
/*********/

func TestOutputBoot0InfoVerbose(t *testing.T) {

  img := build_boot0 ( 8, dram_param_a10 () )
  var out strings.Builder
  sectors,err := OutputBoot0Info ( img[:SECTOR_SIZE],
    bytes.NewReader ( img[SECTOR_SIZE:] ), &out, "", true )
  if err != nil {
    t.Fatalf ( "OutputBoot0Info() error = %v", err )
  }
  if sectors != 7 {
    t.Errorf ( "OutputBoot0Info() = %d sectors, want 7", sectors )
  }

  // L'informe té totes les seccions, en ordre
  text := out.String ()
  sections := []string{
    "Found eGON header (eGON.BT0).",
    "Boot0 Filesize is 4kB.",
    "MAGIC:          eGON.BT0",
    "eGON checksum matches.",
    "Parameters seem valid for A10/A10s/A13/A20.",
    "[dram para]",
    "dram_clk",
  }
  pos := -1
  for _,section := range sections {
    ind := strings.Index ( text, section )
    if ind == -1 {
      t.Fatalf ( "missing section %q in report: %q", section, text )
    }
    if ind < pos {
      t.Errorf ( "section %q is out of order", section )
    }
    pos= ind
  }

} // end TestOutputBoot0InfoVerbose


// En mode no verbose no es llig res més enllà del primer sector i no
// s'escriu res: sols es torna quants sectors ha d'avançar el
// cridador.
func TestOutputBoot0InfoQuiet(t *testing.T) {

  img := build_boot0 ( 8, dram_param_a10 () )
  rest := bytes.NewReader ( img[SECTOR_SIZE:] )
  var out strings.Builder
  sectors,err := OutputBoot0Info ( img[:SECTOR_SIZE], rest, &out,
    "", false )
  if err != nil {
    t.Fatalf ( "OutputBoot0Info() error = %v", err )
  }
  if sectors != 7 {
    t.Errorf ( "OutputBoot0Info() = %d sectors, want 7", sectors )
  }
  if rest.Len () != 7*SECTOR_SIZE {
    t.Errorf ( "quiet mode consumed %d bytes from the source",
      7*SECTOR_SIZE-rest.Len () )
  }
  if out.Len () != 0 {
    t.Errorf ( "quiet mode wrote output: %q", out.String () )
  }

} // end TestOutputBoot0InfoQuiet


// Amb un filesize desalineat falla la descodificació i no s'emet cap
// secció més.
func TestOutputBoot0InfoBadAlignment(t *testing.T) {

  img := build_boot0 ( 8, dram_param_a10 () )
  put32 ( img[16:], 4097 )
  var out strings.Builder
  sectors,err := OutputBoot0Info ( img[:SECTOR_SIZE],
    bytes.NewReader ( img[SECTOR_SIZE:] ), &out, "", true )
  if !errors.Is ( err, ErrBadFilesizeAlignment ) {
    t.Errorf ( "OutputBoot0Info() error = %v, want %v", err,
      ErrBadFilesizeAlignment )
  }
  if sectors != 0 {
    t.Errorf ( "OutputBoot0Info() = %d sectors, want 0", sectors )
  }
  if strings.Contains ( out.String (), "eGON checksum" ) ||
    strings.Contains ( out.String (), "dram" ) {
    t.Errorf ( "report continued after the error: %q", out.String () )
  }

} // end TestOutputBoot0InfoBadAlignment


func TestOutputBoot0InfoTruncated(t *testing.T) {

  img := build_boot0 ( 8, dram_param_a10 () )
  var out strings.Builder
  sectors,err := OutputBoot0Info ( img[:SECTOR_SIZE],
    bytes.NewReader ( img[SECTOR_SIZE:2*SECTOR_SIZE] ), &out, "", true )
  if !errors.Is ( err, ErrTruncatedImage ) {
    t.Errorf ( "OutputBoot0Info() error = %v, want %v", err,
      ErrTruncatedImage )
  }
  if sectors != 0 {
    t.Errorf ( "OutputBoot0Info() = %d sectors, want 0", sectors )
  }

} // end TestOutputBoot0InfoTruncated
