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
 *  mbr.go - Medi complet amb master boot record. En els medis
 *           Allwinner el boot0 viu fora de les particions, en un
 *           offset fix.
 *
 */

package imgs;

import (
  "fmt"
  "io"
  "os"
  "strconv"

  "github.com/adriagipas/sunxifw/utils"
)


/*************/
/* CONSTANTS */
/*************/

const SEC_SIZE = 512

// Partition Types
const PTYPE_FAT16B  = 0x06
const PTYPE_FAT32   = 0x0b
const PTYPE_FAT32L  = 0x0c
const PTYPE_EXT     = 0x05
const PTYPE_LINUX   = 0x83
const PTYPE_GPTPROT = 0xee


/*******/
/* MBR */
/*******/

// Segueix una aproximació lazzy
type _MBR struct {

  file_name  string

}


func newMBR(file_name string) *_MBR {
  ret := _MBR {
    file_name : file_name,
    }
  return &ret
} // end newMBR


// Mètode privat que rep el descriptor del fixer ja obert i llig el
// contingut del MBR.
func (self *_MBR) getContent(f *os.File) (*_MBRContent,error) {

  // Obté info i comprovacions sobre grandària
  info,err := f.Stat ()
  if err != nil { return nil, err }
  if info.IsDir() {
    return nil,fmt.Errorf("'%s' is a directory",self.file_name)
  }
  if info.Size()<=0 || info.Size()%SEC_SIZE != 0 {
    return nil,fmt.Errorf("Wrong size (%d) for '%s'",info.Size(),self.file_name)
  }

  // Llig el MBR
  var buf [SEC_SIZE]byte
  nbytes,err := f.Read ( buf[:] )
  if err != nil { return nil,err }
  if nbytes != SEC_SIZE {
    return nil,fmt.Errorf("Unable to read the MBR from '%s'",self.file_name)
  }
  if buf[0x1FE] != 0x55 || buf[0x1FF] != 0xaa {
    return nil,fmt.Errorf("'%s' does not contain a valid MBR",self.file_name)
  }

  // Crea el contingut
  ret := _MBRContent {}
  ret.partitions[0].read ( buf[0x1be:0x1be+16] )
  ret.partitions[1].read ( buf[0x1ce:0x1ce+16] )
  ret.partitions[2].read ( buf[0x1de:0x1de+16] )
  ret.partitions[3].read ( buf[0x1ee:0x1ee+16] )

  // Comprova grandària particions, i si són absurdes invalida
  // partició.
  for i := 0; i < 4; i++ {
    pe := &ret.partitions[i]
    if pe.lba == 0 ||
      int64(uint64(pe.lba+pe.num_sectors)*512) > info.Size() {
      pe.valid= false
    }
  }

  return &ret,nil

} // end getContent


func (self *_MBR) PrintInfo(file io.Writer, prefix string) error {

  // Obté continguts
  f,err := os.Open ( self.file_name )
  if err != nil { return err }
  cont,err := self.getContent ( f )
  if err != nil { f.Close (); return err }

  // Preparació impressió
  P := fmt.Fprintln
  F := fmt.Fprintf

  // Imprimeix
  P(file,prefix, "Image with Master Boot Record (MBR)")
  P(file,"")
  P(file,prefix, "Partitions:")
  for i := 0; i < 4; i++ {
    e := &cont.partitions[i]
    if e.valid {
      P(file,"")
      F(file,"%s  %d)\n",prefix,i)
      P(file,"")
      F(file,"%s    BOOT:         ",prefix)
      if e.active {
        P(file,"Yes")
      } else {
        P(file,"No")
      }
      F(file,"%s    TYPE:         %s\n", prefix, ptype2str ( e.ptype ) )
      F(file,"%s    NUM. SECTORS: %d (%s)\n",
        prefix,e.num_sectors,
        utils.NumBytesToStr ( uint64(e.num_sectors)*SEC_SIZE ))
      F(file,"%s    LBA:          %08Xh\n",prefix, e.lba)
      F(file,"%s    FIRST SECTOR: %s\n",prefix,e.first_sector.toString ())
      F(file,"%s    LAST SECTOR:  %s\n",prefix,e.last_sector.toString ())
    }
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


func (self *_MBR) GetParts() ([]Part,error) {

  // Obté continguts
  f,err := os.Open ( self.file_name )
  if err != nil { return nil,err }
  cont,err := self.getContent ( f )
  if err != nil { f.Close (); return nil,err }

  // Crea les parts: particions i boot0
  var ret []Part
  for i := 0; i < 4; i++ {
    pe := &cont.partitions[i]
    if !pe.valid { continue }
    ret= append ( ret, Part{
      Name   : strconv.FormatInt ( int64(i), 10 ),
      Type   : ptype2str ( pe.ptype ),
      Offset : int64(pe.lba)*SEC_SIZE,
      Length : int64(pe.num_sectors)*SEC_SIZE,
    })
  }
  ret= append ( ret, find_boot0_parts ( f )... )

  // Tanca
  f.Close ()

  return ret,nil

} // end GetParts


/***************/
/* MBR CONTENT */
/***************/

type _MBRContent struct {
  partitions [4]_PartitionEntry // Entrades paritions
}


/*******/
/* CHS */
/*******/

type _CHS struct {
  C uint16
  H uint8
  S uint8
}

func (chr *_CHS) toString() string {
  return fmt.Sprintf ( "C:%04d H:%02d S:%02d", chr.C, chr.H, chr.S )
}


/*******************/
/* PARTITION ENTRY */
/*******************/

type _PartitionEntry struct {

  valid        bool   // Indica que és una entrada vàlida
  active       bool   // Indica que és una partició activa
  num_sectors  uint32 // Nombre de sectors
  first_sector _CHS   // Adreça absoluta primer sector
  last_sector  _CHS   // Adreça absoluta últim sector
  lba          uint32 // LBA del primer sector
  ptype        uint8

}

// S'utilitza per omplir una PartitionEntry amb dades.
func (pe *_PartitionEntry) read(data []byte) {

  // Inicialment és valid
  pe.valid= true
  pe.active= (data[0]&0x80)!=0

  // Grandària
  pe.num_sectors= uint32(data[0xc]) |
    (uint32(data[0xd])<<8) |
    (uint32(data[0xe])<<16) |
    (uint32(data[0xf])<<24)
  if pe.num_sectors == 0 {
    pe.valid= false
    return
  }

  // CHS primer sector
  pe.first_sector.C= (uint16(data[2]&0xC0)<<2) | uint16(data[3])
  pe.first_sector.H= data[1]
  pe.first_sector.S= data[2]&0x3F
  if pe.first_sector.S == 0 {
    pe.valid= false
    return
  }

  // CHS últim sector
  pe.last_sector.C= (uint16(data[6]&0xC0)<<2) | uint16(data[7])
  pe.last_sector.H= data[5]
  pe.last_sector.S= data[6]&0x3F
  if pe.last_sector.S == 0 {
    pe.valid= false
    return
  }

  // LBA
  pe.lba= uint32(data[0x8]) |
    (uint32(data[0x9])<<8) |
    (uint32(data[0xa])<<16) |
    (uint32(data[0xb])<<24)

  // Partition type
  pe.ptype= data[4]

} // end read


// Obté el tipus de la partició
func ptype2str(ptype uint8) string {
  switch ptype {
  case PTYPE_FAT16B:   return "FAT16B    "
  case PTYPE_FAT32:    return "FAT32     "
  case PTYPE_FAT32L:   return "FAT32 LBA "
  case PTYPE_EXT:      return "Extended  "
  case PTYPE_LINUX:    return "Linux     "
  case PTYPE_GPTPROT:  return "GPT prot. "
  default: return fmt.Sprintf("UNK (%02X)",ptype)
  }
} // end ptype2str
