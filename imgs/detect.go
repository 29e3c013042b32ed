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
 *  detect.go - Funció per a detectar el tipus d'una image.
 *
 */

package imgs

import (
  "fmt"
  "os"

  "github.com/adriagipas/sunxifw/egon"
)


/*********/
/* TIPUS */
/*********/

const TYPE_UNK   = 0
const TYPE_EGON  = 1 // boot0/boot1 aïllat
const TYPE_UBOOT = 2 // imatge U-Boot legacy
const TYPE_MBR   = 3 // medi complet amb taula de particions MBR
const TYPE_GPT   = 4 // medi complet amb taula GPT


/************/
/* FUNCIONS */
/************/

const HEADER_SIZE = 512

func Detect(file_name string) (int,error) {

  // Primer prova capçaleres que s'identifiquen amb el primer sector.
  ret,err := detect_h512 ( file_name )
  if err!=nil { return -1,err }
  if ret!=TYPE_UNK { return ret,nil }

  // Prova taules de particions (GPT duu un MBR protector, per tant es
  // prova abans).
  return detect_ptable ( file_name )

} // end Detect


// Cert si el sector comença amb una capçalera eGON (boot0 o boot1).
func is_egon_magic(sector []byte) bool {

  if len(sector) < 12 { return false }
  magic := string(sector[4:12])

  return magic == egon.MAGIC_BT0 || magic == egon.MAGIC_BT1

} // end is_egon_magic


// Cert si el sector comença amb una capçalera U-Boot legacy.
func is_uboot_magic(sector []byte) bool {

  if len(sector) < 4 { return false }

  // Big-endian, a diferència de la resta del format
  magic := (uint32(sector[0])<<24) |
    (uint32(sector[1])<<16) |
    (uint32(sector[2])<<8) |
    uint32(sector[3])

  return magic == UBOOT_MAGIC

} // end is_uboot_magic


// Sols empra el primer sector per prendre la decisió. Torna TYPE_UNK
// si no es sap.
func detect_h512(file_name string) (int,error) {

  // Obté informació del fitxer
  f,err := os.Open ( file_name )
  if err != nil { return -1,err }
  info,err := f.Stat ()
  if err != nil { f.Close (); return -1,err }

  // Llig el primer sector
  nbytes := info.Size ()
  if nbytes < HEADER_SIZE { f.Close (); return TYPE_UNK,nil }
  var mem [HEADER_SIZE]byte
  header := mem[:]
  n,err := f.Read ( header )
  if err != nil { f.Close (); return -1,err }
  if n != HEADER_SIZE {
    f.Close ()
    return -1,fmt.Errorf ( "Unexpected error while reading header from '%s'",
      file_name )
  }
  f.Close ()

  // Comprova
  if is_egon_magic ( header ) {
    return TYPE_EGON,nil
  } else if is_uboot_magic ( header ) {
    return TYPE_UBOOT,nil
  } else {
    return TYPE_UNK,nil
  }

} // end detect_h512


// Detecta medis complets amb taula de particions.
func detect_ptable(file_name string) (int,error) {

  // Obté informació del fitxer.
  f,err := os.Open ( file_name )
  if err != nil { return -1,err }
  info,err := f.Stat ()
  if err != nil { f.Close (); return -1,err }
  nbytes := info.Size()
  if nbytes < 2*SEC_SIZE || nbytes%SEC_SIZE != 0 {
    f.Close ()
    return TYPE_UNK,nil
  }

  // Llig els dos primers sectors
  var mem [2*SEC_SIZE]byte
  buf := mem[:]
  n,err := f.Read ( buf )
  if err != nil { f.Close (); return -1,err }
  if n != 2*SEC_SIZE {
    f.Close ()
    return -1,fmt.Errorf ( "Unexpected error while reading header from '%s'",
      file_name )
  }
  f.Close ()

  // La capçalera GPT viu en el segon sector (LBA 1)
  if string(buf[SEC_SIZE:SEC_SIZE+8]) == GPT_SIGNATURE {
    return TYPE_GPT,nil
  }

  // Firma del MBR
  if buf[0x1FE] == 0x55 && buf[0x1FF] == 0xaa {
    return TYPE_MBR,nil
  }

  return TYPE_UNK,nil

} // end detect_ptable
