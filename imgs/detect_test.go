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
 *  detect_test.go - Tests de la detecció de tipus d'imatge.
 *
 */

package imgs

import (
  "os"
  "path/filepath"
  "testing"

  "github.com/adriagipas/sunxifw/egon"
)


/*********/
/* UTILS */
/*********/

func write_tmp(t *testing.T, name string, data []byte) string {
  t.Helper ()
  path := filepath.Join ( t.TempDir (), name )
  if err := os.WriteFile ( path, data, 0644 ); err != nil {
    t.Fatalf ( "WriteFile() error = %v", err )
  }
  return path
} // end write_tmp


/*********/
/* TESTS */
/*********/

func TestDetect(t *testing.T) {

  // boot0 aïllat
  egon_img := make ( []byte, SEC_SIZE )
  copy ( egon_img[4:12], []byte(egon.MAGIC_BT0) )

  // boot1 aïllat
  egon1_img := make ( []byte, SEC_SIZE )
  copy ( egon1_img[4:12], []byte(egon.MAGIC_BT1) )

  // U-Boot legacy (el magic és big-endian)
  uboot_img := make ( []byte, SEC_SIZE )
  uboot_img[0]= 0x27
  uboot_img[1]= 0x05
  uboot_img[2]= 0x19
  uboot_img[3]= 0x56

  // Medi amb MBR
  mbr_img := make ( []byte, 2*SEC_SIZE )
  mbr_img[0x1FE]= 0x55
  mbr_img[0x1FF]= 0xaa

  // Medi amb GPT (duu un MBR protector, ha de guanyar el GPT)
  gpt_img := make ( []byte, 2*SEC_SIZE )
  gpt_img[0x1FE]= 0x55
  gpt_img[0x1FF]= 0xaa
  copy ( gpt_img[SEC_SIZE:], []byte(GPT_SIGNATURE) )

  // Desconeguts
  unk_img := make ( []byte, 2*SEC_SIZE )
  short_img := make ( []byte, 100 )

  tests := []struct{
    name     string
    data     []byte
    expected int
  }{
    {name: "boot0", data: egon_img, expected: TYPE_EGON},
    {name: "boot1", data: egon1_img, expected: TYPE_EGON},
    {name: "uboot", data: uboot_img, expected: TYPE_UBOOT},
    {name: "mbr", data: mbr_img, expected: TYPE_MBR},
    {name: "gpt", data: gpt_img, expected: TYPE_GPT},
    {name: "unknown", data: unk_img, expected: TYPE_UNK},
    {name: "too short", data: short_img, expected: TYPE_UNK},
  }

  for _,tt := range tests {
    t.Run ( tt.name, func(t *testing.T) {
      path := write_tmp ( t, "img.bin", tt.data )
      ret,err := Detect ( path )
      if err != nil {
        t.Fatalf ( "Detect() error = %v", err )
      }
      if ret != tt.expected {
        t.Errorf ( "Detect() = %d, want %d", ret, tt.expected )
      }
    })
  }

} // end TestDetect


func TestDetectMissingFile(t *testing.T) {

  path := filepath.Join ( t.TempDir (), "nonexistent.bin" )
  if _,err := Detect ( path ); err == nil {
    t.Errorf ( "Detect() error = nil, want error" )
  }

} // end TestDetectMissingFile
