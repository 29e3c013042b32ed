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
 *  uboot.go - Imatges U-Boot legacy (uImage). En els medis Allwinner
 *             l'U-Boot va empaquetat darrere del boot0.
 *
 */

package imgs;

import (
  "fmt"
  "hash/crc32"
  "io"
  "os"

  "github.com/adriagipas/sunxifw/utils"
)


/*************/
/* CONSTANTS */
/*************/

const UBOOT_MAGIC = 0x27051956

const UBOOT_HEADER_SIZE = 64


/*********************/
/* FUNCIONS PRIVADES */
/*********************/

func _be32(data []byte) uint32 {
  return (uint32(data[0])<<24) |
    (uint32(data[1])<<16) |
    (uint32(data[2])<<8) |
    uint32(data[3])
} // end _be32


func uboot_os2str(val uint8) string {
  switch val {
  case 2:  return "NetBSD"
  case 5:  return "Linux"
  case 17: return "Firmware"
  case 22: return "U-Boot"
  default: return fmt.Sprintf("UNK (%d)",val)
  }
} // end uboot_os2str


func uboot_arch2str(val uint8) string {
  switch val {
  case 2:  return "ARM"
  case 3:  return "x86"
  case 22: return "AArch64"
  case 26: return "RISC-V"
  default: return fmt.Sprintf("UNK (%d)",val)
  }
} // end uboot_arch2str


func uboot_type2str(val uint8) string {
  switch val {
  case 1:  return "Standalone"
  case 2:  return "Kernel"
  case 3:  return "RAMDisk"
  case 4:  return "Multi-File"
  case 5:  return "Firmware"
  case 6:  return "Script"
  default: return fmt.Sprintf("UNK (%d)",val)
  }
} // end uboot_type2str


func uboot_comp2str(val uint8) string {
  switch val {
  case 0:  return "none"
  case 1:  return "gzip"
  case 2:  return "bzip2"
  case 3:  return "lzma"
  case 5:  return "lz4"
  default: return fmt.Sprintf("UNK (%d)",val)
  }
} // end uboot_comp2str


/**********/
/* HEADER */
/**********/

// Capçalera d'una imatge U-Boot legacy. Tots els camps són
// big-endian.
type _UBootHeader struct {

  magic      uint32
  hcrc       uint32 // CRC de la capçalera amb aquest camp a zero
  time       uint32
  size       uint32 // Grandària de les dades
  load_addr  uint32
  entry_addr uint32
  dcrc       uint32 // CRC de les dades
  os         uint8
  arch       uint8
  itype      uint8
  comp       uint8
  name       string

}


func (self *_UBootHeader) read(data []byte) {

  self.magic= _be32 ( data[0:] )
  self.hcrc= _be32 ( data[4:] )
  self.time= _be32 ( data[8:] )
  self.size= _be32 ( data[12:] )
  self.load_addr= _be32 ( data[16:] )
  self.entry_addr= _be32 ( data[20:] )
  self.dcrc= _be32 ( data[24:] )
  self.os= data[28]
  self.arch= data[29]
  self.itype= data[30]
  self.comp= data[31]

  // Nom, acabat en zero
  name := data[32:UBOOT_HEADER_SIZE]
  length := 0
  for length < len(name) && name[length] != 0 { length++ }
  self.name= string(name[:length])

} // end read


// Comprova el CRC de la capçalera: es calcula amb el camp hcrc a
// zero.
func (self *_UBootHeader) checkCRC(data []byte) bool {

  var buf [UBOOT_HEADER_SIZE]byte
  copy ( buf[:], data[:UBOOT_HEADER_SIZE] )
  buf[4],buf[5],buf[6],buf[7]= 0,0,0,0

  return crc32.ChecksumIEEE ( buf[:] ) == self.hcrc

} // end checkCRC


/*********/
/* UBOOT */
/*********/

type _UBoot struct {

  file_name string

}


func newUBoot(file_name string) *_UBoot {
  ret := _UBoot {
    file_name : file_name,
    }
  return &ret
} // end newUBoot


// Mètode privat que rep el descriptor del fitxer ja obert i llig la
// capçalera.
func (self *_UBoot) getHeader(f *os.File) (*_UBootHeader,[]byte,error) {

  var mem [UBOOT_HEADER_SIZE]byte
  buf := mem[:]
  if _,err := io.ReadFull ( f, buf ); err != nil {
    return nil,nil,fmt.Errorf ( "Unable to read the uImage header"+
      " from '%s': %v", self.file_name, err )
  }
  header := _UBootHeader{}
  header.read ( buf )
  if header.magic != UBOOT_MAGIC {
    return nil,nil,fmt.Errorf ( "'%s' does not contain a valid uImage"+
      " header", self.file_name )
  }

  return &header,buf,nil

} // end getHeader


func (self *_UBoot) PrintInfo(file io.Writer, prefix string) error {

  // Obté la capçalera
  f,err := os.Open ( self.file_name )
  if err != nil { return err }
  header,raw,err := self.getHeader ( f )
  if err != nil { f.Close (); return err }

  // Preparació impressió
  P := fmt.Fprintln
  F := fmt.Fprintf

  // Imprimeix
  P(file,prefix,"U-Boot legacy image (uImage)")
  P(file,"")
  F(file,"%s  NAME:       %s\n",prefix,header.name)
  F(file,"%s  SIZE:       %d (%s)\n",prefix,header.size,
    utils.NumBytesToStr ( uint64(header.size) ))
  F(file,"%s  LOAD ADDR:  0x%08X\n",prefix,header.load_addr)
  F(file,"%s  ENTRY ADDR: 0x%08X\n",prefix,header.entry_addr)
  F(file,"%s  OS:         %s\n",prefix,uboot_os2str ( header.os ))
  F(file,"%s  ARCH:       %s\n",prefix,uboot_arch2str ( header.arch ))
  F(file,"%s  TYPE:       %s\n",prefix,uboot_type2str ( header.itype ))
  F(file,"%s  COMP:       %s\n",prefix,uboot_comp2str ( header.comp ))
  if header.checkCRC ( raw ) {
    F(file,"%s  HEADER CRC: 0x%08X (valid)\n",prefix,header.hcrc)
  } else {
    F(file,"%s  HEADER CRC: 0x%08X (INVALID)\n",prefix,header.hcrc)
  }

  // Comprova el CRC de les dades
  data := make ( []byte, header.size )
  if _,err := io.ReadFull ( f, data ); err != nil {
    F(file,"%s  DATA CRC:   0x%08X (data is truncated)\n",
      prefix,header.dcrc)
  } else if crc32.ChecksumIEEE ( data ) == header.dcrc {
    F(file,"%s  DATA CRC:   0x%08X (valid)\n",prefix,header.dcrc)
  } else {
    F(file,"%s  DATA CRC:   0x%08X (INVALID)\n",prefix,header.dcrc)
  }

  // Tanca
  f.Close ()

  return nil

} // end PrintInfo


func (self *_UBoot) GetParts() ([]Part,error) {

  // Obté la capçalera
  f,err := os.Open ( self.file_name )
  if err != nil { return nil,err }
  header,_,err := self.getHeader ( f )
  f.Close ()
  if err != nil { return nil,err }

  // Crea les parts
  ret := []Part{
    Part{
      Name   : "header",
      Type   : "uImage header",
      Offset : 0,
      Length : UBOOT_HEADER_SIZE,
    },
    Part{
      Name   : "data",
      Type   : uboot_type2str ( header.itype ),
      Offset : UBOOT_HEADER_SIZE,
      Length : int64(header.size),
    },
  }

  return ret,nil

} // end GetParts
