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
 *  gpt.go - Medi complet amb taula de particions GPT. Les plaques
 *           Allwinner més noves arranquen de medis GPT amb el boot0
 *           en un offset fix, fora de les particions.
 *
 */

package imgs;

import (
  "bytes"
  "fmt"
  "hash/crc32"
  "io"
  "os"

  "golang.org/x/text/encoding/unicode"

  "github.com/adriagipas/sunxifw/utils"
)


/*************/
/* CONSTANTS */
/*************/

const GPT_SIGNATURE = "EFI PART"

const GPT_NAME_SIZE = 72

// Límit raonable per evitar llegir taules corruptes enormes.
const GPT_MAX_ENTRIES = 256


/*********************/
/* FUNCIONS PRIVADES */
/*********************/

func _gu32(data []byte) uint32 {
  return uint32(data[0]) |
    (uint32(data[1])<<8) |
    (uint32(data[2])<<16) |
    (uint32(data[3])<<24)
} // end _gu32


func _gu64(data []byte) uint64 {
  return uint64(_gu32 ( data )) | (uint64(_gu32 ( data[4:] ))<<32)
} // end _gu64


// Representació textual d'un GUID: els tres primers camps són
// little-endian.
func guid2str(data []byte) string {
  return fmt.Sprintf ( "%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X",
    _gu32 ( data ),
    uint16(data[4]) | (uint16(data[5])<<8),
    uint16(data[6]) | (uint16(data[7])<<8),
    data[8], data[9],
    data[10], data[11], data[12], data[13], data[14], data[15] )
} // end guid2str


func guid_is_zero(data []byte) bool {
  for i := 0; i < 16; i++ {
    if data[i] != 0 { return false }
  }
  return true
} // end guid_is_zero


/*******/
/* GPT */
/*******/

type _GPT struct {

  file_name string

}


func newGPT(file_name string) *_GPT {
  ret := _GPT {
    file_name : file_name,
    }
  return &ret
} // end newGPT


/***************/
/* GPT CONTENT */
/***************/

type _GPTHeader struct {

  header_size  uint32
  header_crc   uint32
  crc_valid    bool
  current_lba  uint64
  backup_lba   uint64
  first_usable uint64
  last_usable  uint64
  disk_guid    [16]byte
  entries_lba  uint64
  num_entries  uint32
  entry_size   uint32

}


type _GPTEntry struct {

  type_guid [16]byte
  part_guid [16]byte
  first_lba uint64
  last_lba  uint64
  attrs     uint64
  name      string

}


type _GPTContent struct {
  header  _GPTHeader
  entries []_GPTEntry
}


// Mètode privat que rep el descriptor del fitxer ja obert i llig la
// capçalera GPT (LBA 1) i la taula de particions.
func (self *_GPT) getContent(f *os.File) (*_GPTContent,error) {

  // Llig la capçalera
  var mem [SEC_SIZE]byte
  buf := mem[:]
  if _,err := f.ReadAt ( buf, SEC_SIZE ); err != nil {
    return nil,fmt.Errorf ( "Unable to read the GPT header from '%s': %v",
      self.file_name, err )
  }
  if string(buf[:8]) != GPT_SIGNATURE {
    return nil,fmt.Errorf ( "'%s' does not contain a valid GPT header",
      self.file_name )
  }

  // Desempaqueta
  ret := _GPTContent{}
  h := &ret.header
  h.header_size= _gu32 ( buf[12:] )
  h.header_crc= _gu32 ( buf[16:] )
  h.current_lba= _gu64 ( buf[24:] )
  h.backup_lba= _gu64 ( buf[32:] )
  h.first_usable= _gu64 ( buf[40:] )
  h.last_usable= _gu64 ( buf[48:] )
  copy ( h.disk_guid[:], buf[56:72] )
  h.entries_lba= _gu64 ( buf[72:] )
  h.num_entries= _gu32 ( buf[80:] )
  h.entry_size= _gu32 ( buf[84:] )

  // Comprova el CRC de la capçalera: es calcula amb el camp del CRC a
  // zero.
  if h.header_size >= 92 && int(h.header_size) <= SEC_SIZE {
    tmp := make ( []byte, h.header_size )
    copy ( tmp, buf[:h.header_size] )
    tmp[16],tmp[17],tmp[18],tmp[19]= 0,0,0,0
    h.crc_valid= crc32.ChecksumIEEE ( tmp ) == h.header_crc
  } else {
    h.crc_valid= false
  }

  // Comprovacions bàsiques de la taula
  if h.num_entries == 0 || h.num_entries > GPT_MAX_ENTRIES ||
    h.entry_size < 128 || h.entry_size > SEC_SIZE {
    return nil,fmt.Errorf ( "'%s' contains a GPT table with absurd"+
      " geometry (%d entries of %d bytes)", self.file_name,
      h.num_entries, h.entry_size )
  }

  // Llig la taula de particions
  table := make ( []byte, int64(h.num_entries)*int64(h.entry_size) )
  _,err := f.ReadAt ( table, int64(h.entries_lba)*SEC_SIZE )
  if err != nil {
    return nil,fmt.Errorf ( "Unable to read the GPT table from '%s': %v",
      self.file_name, err )
  }

  // Desempaqueta les entrades. Les entrades amb el tipus a zero no
  // s'usen.
  dec := unicode.UTF16(unicode.LittleEndian,unicode.IgnoreBOM).NewDecoder ()
  for i := uint32(0); i < h.num_entries; i++ {
    data := table[i*h.entry_size:(i+1)*h.entry_size]
    if guid_is_zero ( data[:16] ) { continue }
    e := _GPTEntry{}
    copy ( e.type_guid[:], data[:16] )
    copy ( e.part_guid[:], data[16:32] )
    e.first_lba= _gu64 ( data[32:] )
    e.last_lba= _gu64 ( data[40:] )
    e.attrs= _gu64 ( data[48:] )
    if aux,err := dec.Bytes ( data[56:56+GPT_NAME_SIZE] ); err == nil {
      e.name= string(bytes.TrimRight ( aux, "\000" ))
    }
    ret.entries= append ( ret.entries, e )
  }

  return &ret,nil

} // end getContent


func (self *_GPT) PrintInfo(file io.Writer, prefix string) error {

  // Obté continguts
  f,err := os.Open ( self.file_name )
  if err != nil { return err }
  cont,err := self.getContent ( f )
  if err != nil { f.Close (); return err }

  // Preparació impressió
  P := fmt.Fprintln
  F := fmt.Fprintf

  // Imprimeix
  P(file,prefix, "Image with GUID Partition Table (GPT)")
  P(file,"")
  F(file,"%s  DISK GUID:   %s\n",prefix,
    guid2str ( cont.header.disk_guid[:] ))
  if cont.header.crc_valid {
    F(file,"%s  HEADER CRC:  0x%08X (valid)\n",prefix,
      cont.header.header_crc)
  } else {
    F(file,"%s  HEADER CRC:  0x%08X (INVALID)\n",prefix,
      cont.header.header_crc)
  }
  F(file,"%s  USABLE LBAs: %d - %d\n",prefix,
    cont.header.first_usable,cont.header.last_usable)
  P(file,"")
  P(file,prefix, "Partitions:")
  for i,e := range cont.entries {
    num_sectors := e.last_lba-e.first_lba+1
    P(file,"")
    F(file,"%s  %d) %s\n",prefix,i,e.name)
    P(file,"")
    F(file,"%s    TYPE GUID:    %s\n",prefix,guid2str ( e.type_guid[:] ))
    F(file,"%s    PART GUID:    %s\n",prefix,guid2str ( e.part_guid[:] ))
    F(file,"%s    NUM. SECTORS: %d (%s)\n",prefix,num_sectors,
      utils.NumBytesToStr ( num_sectors*SEC_SIZE ))
    F(file,"%s    FIRST LBA:    %08Xh\n",prefix,e.first_lba)
    F(file,"%s    ATTRS:        0x%016X\n",prefix,e.attrs)
  }

  // Busca el boot0 en els offsets de boot coneguts
  if err := print_boot0_info ( f, file, prefix ); err != nil {
    f.Close ()
    return err
  }

  // Tanca
  f.Close ()

  return nil

} // end PrintInfo


func (self *_GPT) GetParts() ([]Part,error) {

  // Obté continguts
  f,err := os.Open ( self.file_name )
  if err != nil { return nil,err }
  cont,err := self.getContent ( f )
  if err != nil { f.Close (); return nil,err }

  // Crea les parts: particions i boot0
  var ret []Part
  for i,e := range cont.entries {
    name := e.name
    if name == "" {
      name= fmt.Sprintf ( "%d", i )
    }
    ret= append ( ret, Part{
      Name   : name,
      Type   : "GPT partition",
      Offset : int64(e.first_lba)*SEC_SIZE,
      Length : int64(e.last_lba-e.first_lba+1)*SEC_SIZE,
    })
  }
  ret= append ( ret, find_boot0_parts ( f )... )

  // Tanca
  f.Close ()

  return ret,nil

} // end GetParts
