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
 *  gpt_test.go - Tests de la taula de particions GPT.
 *
 */

package imgs

import (
  "hash/crc32"
  "os"
  "testing"
)


/*********/
/* UTILS */
/*********/

// Medi sintètic amb MBR protector, capçalera GPT en LBA 1 i una
// entrada en LBA 2 amb el nom "boot".
func build_gpt_medium(entry_size uint32) []byte {

  img := make ( []byte, 4*SEC_SIZE )

  // MBR protector
  img[0x1FE]= 0x55
  img[0x1FF]= 0xaa

  // Capçalera (LBA 1)
  h := img[SEC_SIZE:2*SEC_SIZE]
  copy ( h[0:8], []byte(GPT_SIGNATURE) )
  put32 ( h[12:], 92 )  // header_size
  put64 ( h[24:], 1 )   // current LBA
  put64 ( h[32:], 3 )   // backup LBA
  put64 ( h[40:], 34 )  // first usable
  put64 ( h[48:], 100 ) // last usable
  for i := 0; i < 16; i++ { h[56+i]= byte(i+1) }
  put64 ( h[72:], 2 )   // entries LBA
  put32 ( h[80:], 1 )   // num entries
  put32 ( h[84:], entry_size )

  // CRC: es calcula amb el camp del CRC a zero, que és el seu estat
  // actual.
  put32 ( h[16:], crc32.ChecksumIEEE ( h[:92] ) )

  // Entrada (LBA 2)
  e := img[2*SEC_SIZE:]
  e[0]= 1 // type GUID no zero
  for i := 0; i < 16; i++ { e[16+i]= byte(0xa0+i) }
  put64 ( e[32:], 34 ) // first LBA
  put64 ( e[40:], 99 ) // last LBA
  put64 ( e[48:], 4 )  // attrs
  for i,c := range "boot" {
    e[56+i*2]= byte(c) // UTF-16LE
  }

  return img

} // end build_gpt_medium


/*********/
/* TESTS */
/*********/

func TestGPTGetContent(t *testing.T) {

  path := write_tmp ( t, "gpt.img", build_gpt_medium ( 128 ) )
  img := newGPT ( path )
  f,err := os.Open ( path )
  if err != nil {
    t.Fatalf ( "Open() error = %v", err )
  }
  defer f.Close ()
  cont,err := img.getContent ( f )
  if err != nil {
    t.Fatalf ( "getContent() error = %v", err )
  }
  if !cont.header.crc_valid {
    t.Errorf ( "crc_valid = false, want true" )
  }
  if len(cont.entries) != 1 {
    t.Fatalf ( "len(entries) = %d, want 1", len(cont.entries) )
  }
  if cont.entries[0].name != "boot" {
    t.Errorf ( "name = %q, want %q", cont.entries[0].name, "boot" )
  }

} // end TestGPTGetContent


func TestGPTGetParts(t *testing.T) {

  path := write_tmp ( t, "gpt.img", build_gpt_medium ( 128 ) )
  parts,err := newGPT ( path ).GetParts ()
  if err != nil {
    t.Fatalf ( "GetParts() error = %v", err )
  }
  if len(parts) != 1 {
    t.Fatalf ( "len(parts) = %d, want 1", len(parts) )
  }
  if parts[0].Name != "boot" {
    t.Errorf ( "Name = %q, want %q", parts[0].Name, "boot" )
  }
  if parts[0].Offset != 34*SEC_SIZE {
    t.Errorf ( "Offset = %d, want %d", parts[0].Offset,
      34*SEC_SIZE )
  }
  if parts[0].Length != 66*SEC_SIZE {
    t.Errorf ( "Length = %d, want %d", parts[0].Length,
      66*SEC_SIZE )
  }

} // end TestGPTGetParts


// La geometria de la taula es comprova abans de reservar memòria: una
// capçalera amb un entry_size desorbitat s'ha de rebutjar.
func TestGPTAbsurdEntrySize(t *testing.T) {

  path := write_tmp ( t, "gpt.img", build_gpt_medium ( 0x10000 ) )
  img := newGPT ( path )
  f,err := os.Open ( path )
  if err != nil {
    t.Fatalf ( "Open() error = %v", err )
  }
  defer f.Close ()
  if _,err := img.getContent ( f ); err == nil {
    t.Errorf ( "getContent() error = nil, want error" )
  }

} // end TestGPTAbsurdEntrySize
