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
 *  header_test.go - Tests de la capçalera primària.
 *
 */

package egon

import (
  "errors"
  "io"
  "testing"
)


/*********/
/* UTILS */
/*********/

func put32(data []byte, val uint32) {
  data[0]= byte(val)
  data[1]= byte(val>>8)
  data[2]= byte(val>>16)
  data[3]= byte(val>>24)
} // end put32


// Construeix una imatge boot0 sintètica de nsectors sectors amb el
// checksum correcte i el bloc de paràmetres de la DRAM indicat.
func build_boot0(nsectors int, dram []uint32) []byte {

  img := make ( []byte, nsectors*SECTOR_SIZE )

  // Capçalera primària
  put32 ( img[0:], 0xea000016 ) // jump
  copy ( img[4:12], []byte(MAGIC_BT0) )
  put32 ( img[16:], uint32(nsectors*SECTOR_SIZE) )
  put32 ( img[20:], HEADER_SIZE )
  copy ( img[24:28], []byte("1100") )
  put32 ( img[28:], 0 )
  put32 ( img[32:], 0x4a000000 )
  copy ( img[36:40], []byte("1100") )
  copy ( img[40:48], []byte("parmdata") )

  // Capçalera secundària
  put32 ( img[48:], 1024 )
  copy ( img[52:56], []byte("1000") )
  for i := 0; i < len(dram) && i < DRAM_PARAM_COUNT; i++ {
    put32 ( img[56+i*4:], dram[i] )
  }

  // Contingut de farciment
  for off := 512; off < len(img); off+= 4 {
    put32 ( img[off:], uint32(off) )
  }

  // Checksum
  var checksum uint32 = CHECKSUM_SEED
  for i := 0; i < len(img)/4; i++ {
    if i == _CHECKSUM_WORD { continue }
    checksum+= _u32 ( img[i*4:] )
  }
  put32 ( img[12:], checksum )

  return img

} // end build_boot0


// Bloc de paràmetres vàlid per a A10/A10s/A13/A20.
func dram_param_a10() []uint32 {
  param := make ( []uint32, DRAM_PARAM_COUNT )
  param[0]= 0x40000000 // baseaddr
  param[1]= 360        // clk
  param[2]= 3          // type: DDR3
  param[3]= 1          // rank_num
  param[9]= 0          // odt_en
  param[10]= 1024      // size
  return param
} // end dram_param_a10


/*********/
/* TESTS */
/*********/

func TestReadHeaderValid(t *testing.T) {

  img := build_boot0 ( 8, dram_param_a10 () )
  header,err := ReadHeader ( img[:SECTOR_SIZE], io.Discard )
  if err != nil {
    t.Fatalf ( "ReadHeader() error = %v", err )
  }
  if string(header.Magic[:]) != MAGIC_BT0 {
    t.Errorf ( "Magic = %q, want %q", header.Magic[:], MAGIC_BT0 )
  }
  if header.IsBoot1 () {
    t.Errorf ( "IsBoot1() = true, want false" )
  }
  if header.Filesize != 4096 {
    t.Errorf ( "Filesize = %d, want 4096", header.Filesize )
  }
  if header.HeaderSize != HEADER_SIZE {
    t.Errorf ( "HeaderSize = %d, want %d", header.HeaderSize,
      HEADER_SIZE )
  }
  if header.RunAddress != 0x4a000000 {
    t.Errorf ( "RunAddress = 0x%08X, want 0x4A000000",
      header.RunAddress )
  }
  if header.SectorCount () != 8 {
    t.Errorf ( "SectorCount() = %d, want 8", header.SectorCount () )
  }

} // end TestReadHeaderValid


func TestReadHeaderBoot1(t *testing.T) {

  img := build_boot0 ( 8, dram_param_a10 () )
  copy ( img[4:12], []byte(MAGIC_BT1) )
  header,err := ReadHeader ( img[:SECTOR_SIZE], io.Discard )
  if err != nil {
    t.Fatalf ( "ReadHeader() error = %v", err )
  }
  if !header.IsBoot1 () {
    t.Errorf ( "IsBoot1() = false, want true" )
  }

} // end TestReadHeaderBoot1


func TestReadHeaderErrors(t *testing.T) {

  tests := []struct{
    name     string
    mutate   func(img []byte)
    expected error
  }{
    {
      name: "wrong magic",
      mutate: func(img []byte) {
        copy ( img[4:12], []byte("eGON.FES") )
      },
      expected: ErrBadMagic,
    },
    {
      // Lexicogràficament major que eGON.BT1, però no és cap
      // etiqueta coneguda
      name: "magic greater than eGON.BT1",
      mutate: func(img []byte) {
        copy ( img[4:12], []byte("eGON.BT2") )
      },
      expected: ErrBadMagic,
    },
    {
      name: "header size mismatch",
      mutate: func(img []byte) {
        put32 ( img[20:], HEADER_SIZE+4 )
      },
      expected: ErrHeaderSizeMismatch,
    },
    {
      name: "filesize not aligned",
      mutate: func(img []byte) {
        put32 ( img[16:], 4097 )
      },
      expected: ErrBadFilesizeAlignment,
    },
    {
      name: "filesize one below alignment",
      mutate: func(img []byte) {
        put32 ( img[16:], 4095 )
      },
      expected: ErrBadFilesizeAlignment,
    },
    {
      name: "filesize zero",
      mutate: func(img []byte) {
        put32 ( img[16:], 0 )
      },
      expected: ErrEmptyImage,
    },
  }

  for _,tt := range tests {
    t.Run ( tt.name, func(t *testing.T) {
      img := build_boot0 ( 8, dram_param_a10 () )
      tt.mutate ( img )
      _,err := ReadHeader ( img[:SECTOR_SIZE], io.Discard )
      if !errors.Is ( err, tt.expected ) {
        t.Errorf ( "ReadHeader() error = %v, want %v", err,
          tt.expected )
      }
    })
  }

} // end TestReadHeaderErrors


func TestReadHeaderShortSector(t *testing.T) {

  img := build_boot0 ( 8, dram_param_a10 () )
  _,err := ReadHeader ( img[:100], io.Discard )
  if !errors.Is ( err, ErrTruncatedImage ) {
    t.Errorf ( "ReadHeader() error = %v, want %v", err,
      ErrTruncatedImage )
  }

} // end TestReadHeaderShortSector


func TestReadSecondaryHeader(t *testing.T) {

  param := dram_param_a10 ()
  img := build_boot0 ( 8, param )
  secondary,err := ReadSecondaryHeader ( img[:SECTOR_SIZE],
    HEADER_SIZE )
  if err != nil {
    t.Fatalf ( "ReadSecondaryHeader() error = %v", err )
  }
  for i := 0; i < DRAM_PARAM_COUNT; i++ {
    if secondary.DramParam[i] != param[i] {
      t.Errorf ( "DramParam[%d] = 0x%08X, want 0x%08X", i,
        secondary.DramParam[i], param[i] )
    }
  }

  // Fora de rang
  if _,err := ReadSecondaryHeader ( img[:SECTOR_SIZE],
    SECTOR_SIZE-8 ); !errors.Is ( err, ErrTruncatedImage ) {
    t.Errorf ( "ReadSecondaryHeader() error = %v, want %v", err,
      ErrTruncatedImage )
  }

} // end TestReadSecondaryHeader
